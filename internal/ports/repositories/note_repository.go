// Package repositories defines the persistence interfaces of the note service.
package repositories

import (
	"context"
	"errors"

	"notehub/internal/domain/entities"
)

// ErrNoteNotFound is returned by Delete when the note does not exist or
// belongs to another user.
var ErrNoteNotFound = errors.New("note not found or not owned by user")

// NoteRepository is the store-facing contract for notes. Owner-scoped methods
// take the acting user's ID and must never touch rows of other users; lookup
// methods return (nil, nil) when the row is absent or not visible.
type NoteRepository interface {
	// Create inserts a note and returns it with the store-assigned ID and
	// timestamps.
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// GetByID returns the user's note, or (nil, nil) when it does not exist
	// or belongs to someone else.
	GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error)

	// ListByUser returns all of the user's notes ordered by updated_at
	// descending.
	ListByUser(ctx context.Context, userID string) ([]*entities.Note, error)

	// Update applies the patch to the user's note and returns the updated row,
	// or (nil, nil) when the note does not exist or belongs to someone else.
	Update(ctx context.Context, noteID, userID string, patch entities.NotePatch) (*entities.Note, error)

	// Delete removes the user's note. Deleting an absent or foreign note is
	// reported via ErrNoteNotFound by implementations.
	Delete(ctx context.Context, noteID, userID string) error

	// GetPublic returns the note regardless of owner, but only when it is
	// public; (nil, nil) otherwise.
	GetPublic(ctx context.Context, noteID string) (*entities.Note, error)

	// ListPublic returns every public note across all owners ordered by
	// updated_at descending.
	ListPublic(ctx context.Context) ([]*entities.Note, error)
}

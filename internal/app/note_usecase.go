// Package app implements the application business logic of the note service.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notehub/internal/domain/entities"
	"notehub/internal/ports/cache"
	"notehub/internal/ports/repositories"
	"notehub/internal/ports/services"
	"notehub/internal/session"
	"notehub/pkg/logger"
)

// Business-level errors.
var (
	ErrNoSession = errors.New("no active session")
	ErrNotFound  = errors.New("note not found")
)

// Notification titles, mirrored from the web client's toasts.
const (
	notifyNoteCreated      = "Note created"
	notifyNoteDeleted      = "Note deleted"
	notifyErrFetchingNotes = "Error fetching notes"
	notifyErrCreatingNote  = "Error creating note"
	notifyErrUpdatingNote  = "Error updating note"
	notifyErrDeletingNote  = "Error deleting note"
	notifyErrRefreshing    = "Notes may be out of date"
)

// NoteUseCase is the single path between callers and the note store. It owns
// the per-user cached note list: reads go through the cache, and every
// successful mutation refetches the authoritative list from the store rather
// than patching the cache in place, so the cache always reflects the store's
// post-mutation state including server-computed timestamps.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
	cache    cache.NoteListCache
	notifier services.Notifier
}

// NewNoteUseCase creates the note use case.
func NewNoteUseCase(noteRepo repositories.NoteRepository, noteCache cache.NoteListCache, notifier services.Notifier) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
		cache:    noteCache,
		notifier: notifier,
	}
}

// List returns the session's notes ordered by updated_at descending. Without
// an active session it returns an empty list and performs no store call.
func (uc *NoteUseCase) List(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.List"))

	sess, ok := session.FromContext(ctx)
	if !ok {
		return []*entities.Note{}, nil
	}

	cached, err := uc.cache.GetList(ctx, sess.UserID)
	if err != nil {
		log.Warn(ctx, "note list cache read failed, falling back to store", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	notes, err := uc.noteRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		uc.notifier.Notify(ctx, notifyErrFetchingNotes, err.Error(), services.SeverityError)
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	if err := uc.cache.SetList(ctx, sess.UserID, notes); err != nil {
		log.Warn(ctx, "failed to cache note list", zap.Error(err))
	}

	return notes, nil
}

// Create validates and stores a new note for the session. A blank title or an
// absent session is rejected before any store call.
func (uc *NoteUseCase) Create(ctx context.Context, title, content string, tags []string) (*entities.Note, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		uc.notifier.Notify(ctx, notifyErrCreatingNote, ErrNoSession.Error(), services.SeverityError)
		return nil, ErrNoSession
	}

	note := entities.NewNote(sess.UserID, title, content, tags)
	if err := note.Validate(); err != nil {
		uc.notifier.Notify(ctx, notifyErrCreatingNote, err.Error(), services.SeverityError)
		return nil, err
	}

	created, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		uc.notifier.Notify(ctx, notifyErrCreatingNote, err.Error(), services.SeverityError)
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	uc.refreshCache(ctx, sess.UserID)
	uc.notifier.Notify(ctx, notifyNoteCreated, "Your note has been created successfully", services.SeveritySuccess)

	return created, nil
}

// Get returns one of the session's notes.
func (uc *NoteUseCase) Get(ctx context.Context, noteID string) (*entities.Note, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID, sess.UserID)
	if err != nil {
		uc.notifier.Notify(ctx, notifyErrFetchingNotes, err.Error(), services.SeverityError)
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, ErrNotFound
	}

	return note, nil
}

// Update applies a partial patch to one of the session's notes. Only title,
// content, tags and is_public are client-settable.
func (uc *NoteUseCase) Update(ctx context.Context, noteID string, patch entities.NotePatch) (*entities.Note, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		uc.notifier.Notify(ctx, notifyErrUpdatingNote, ErrNoSession.Error(), services.SeverityError)
		return nil, ErrNoSession
	}

	patch.Normalize()
	if err := patch.Validate(); err != nil {
		uc.notifier.Notify(ctx, notifyErrUpdatingNote, err.Error(), services.SeverityError)
		return nil, err
	}

	updated, err := uc.noteRepo.Update(ctx, noteID, sess.UserID, patch)
	if err != nil {
		uc.notifier.Notify(ctx, notifyErrUpdatingNote, err.Error(), services.SeverityError)
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if updated == nil {
		uc.notifier.Notify(ctx, notifyErrUpdatingNote, ErrNotFound.Error(), services.SeverityError)
		return nil, ErrNotFound
	}

	uc.refreshCache(ctx, sess.UserID)

	return updated, nil
}

// Delete removes one of the session's notes. Deleting an already absent note
// succeeds; only store failures are reported as errors, leaving the cached
// list untouched.
func (uc *NoteUseCase) Delete(ctx context.Context, noteID string) error {
	sess, ok := session.FromContext(ctx)
	if !ok {
		uc.notifier.Notify(ctx, notifyErrDeletingNote, ErrNoSession.Error(), services.SeverityError)
		return ErrNoSession
	}

	if err := uc.noteRepo.Delete(ctx, noteID, sess.UserID); err != nil {
		if !errors.Is(err, repositories.ErrNoteNotFound) {
			uc.notifier.Notify(ctx, notifyErrDeletingNote, err.Error(), services.SeverityError)
			return fmt.Errorf("failed to delete note: %w", err)
		}
	}

	uc.refreshCache(ctx, sess.UserID)
	uc.notifier.Notify(ctx, notifyNoteDeleted, "Your note has been deleted successfully", services.SeveritySuccess)

	return nil
}

// GetPublic returns the note with the given ID when it is public, regardless
// of session. An absent or private note is a normal (nil, nil) result, not an
// error.
func (uc *NoteUseCase) GetPublic(ctx context.Context, noteID string) (*entities.Note, error) {
	note, err := uc.noteRepo.GetPublic(ctx, noteID)
	if err != nil {
		uc.notifier.Notify(ctx, notifyErrFetchingNotes, err.Error(), services.SeverityError)
		return nil, fmt.Errorf("failed to get public note: %w", err)
	}
	return note, nil
}

// ListPublic returns every public note across all owners ordered by
// updated_at descending. It never touches the session's cached list.
func (uc *NoteUseCase) ListPublic(ctx context.Context) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListPublic(ctx)
	if err != nil {
		uc.notifier.Notify(ctx, notifyErrFetchingNotes, err.Error(), services.SeverityError)
		return nil, fmt.Errorf("failed to list public notes: %w", err)
	}
	return notes, nil
}

// refreshCache refetches the user's notes from the store after a committed
// mutation. A failed refetch never rolls the mutation back: the stale cache
// entry is dropped so the next read hits the store, and the failure is
// reported.
func (uc *NoteUseCase) refreshCache(ctx context.Context, userID string) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.refreshCache"))

	notes, err := uc.noteRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Warn(ctx, "failed to refetch notes after mutation", zap.Error(err))
		if invErr := uc.cache.Invalidate(ctx, userID); invErr != nil {
			log.Warn(ctx, "failed to invalidate note list cache", zap.Error(invErr))
		}
		uc.notifier.Notify(ctx, notifyErrRefreshing, err.Error(), services.SeverityWarning)
		return
	}

	if err := uc.cache.SetList(ctx, userID, notes); err != nil {
		log.Warn(ctx, "failed to cache refetched notes", zap.Error(err))
		if invErr := uc.cache.Invalidate(ctx, userID); invErr != nil {
			log.Warn(ctx, "failed to invalidate note list cache", zap.Error(invErr))
		}
	}
}

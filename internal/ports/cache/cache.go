// Package cache defines the note list cache interface.
package cache

import (
	"context"

	"notehub/internal/domain/entities"
)

// NoteListCache holds the per-user note list that mutations refresh
// wholesale. GetList returns (nil, nil) on a cache miss; a list is only ever
// replaced in full, never patched.
type NoteListCache interface {
	GetList(ctx context.Context, userID string) ([]*entities.Note, error)
	SetList(ctx context.Context, userID string, notes []*entities.Note) error
	Invalidate(ctx context.Context, userID string) error
	Close() error
}

// Package entities defines the domain entities of the note service.
package entities

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyTitle is returned when a note is created or renamed without a title.
var ErrEmptyTitle = errors.New("note title cannot be empty")

// Note is a user's note. A note belongs to exactly one user; when IsPublic is
// set, the note is readable (never writable) by anyone via its ID.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a note for the given user with a normalized tag set.
// Timestamps and the ID are assigned by the store.
func NewNote(userID, title, content string, tags []string) *Note {
	return &Note{
		UserID:  userID,
		Title:   strings.TrimSpace(title),
		Content: content,
		Tags:    NormalizeTags(tags),
	}
}

// Validate checks the client-settable fields before the note reaches the store.
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// NormalizeTags trims tags, drops empty ones and removes duplicates while
// preserving the first occurrence order. Comparison is case-sensitive.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}

// NotePatch describes a partial update. Nil fields are left untouched; the ID,
// owner and timestamps are never client-settable.
type NotePatch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPublic *bool
}

// Validate rejects a patch that would leave the note without a title.
func (p *NotePatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Normalize trims the patched title and normalizes the patched tag set.
func (p *NotePatch) Normalize() {
	if p.Title != nil {
		trimmed := strings.TrimSpace(*p.Title)
		p.Title = &trimmed
	}
	if p.Tags != nil {
		normalized := NormalizeTags(*p.Tags)
		p.Tags = &normalized
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p *NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil && p.IsPublic == nil
}

// Package dto defines the request and response shapes of the HTTP API.
package dto

import (
	"time"

	"notehub/internal/domain/entities"
)

// CreateNoteRequest is the body of POST /api/v1/notes.
type CreateNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateNoteRequest is the body of PUT /api/v1/notes/:note_id. Absent fields
// keep their stored values.
type UpdateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPublic *bool     `json:"is_public"`
}

// Patch converts the request into a domain patch.
func (r *UpdateNoteRequest) Patch() entities.NotePatch {
	return entities.NotePatch{
		Title:    r.Title,
		Content:  r.Content,
		Tags:     r.Tags,
		IsPublic: r.IsPublic,
	}
}

// NoteResponse is a single note as returned by the API. HTML is only set when
// rendering was requested.
type NoteResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	HTML      string   `json:"html,omitempty"`
	Tags      []string `json:"tags"`
	IsPublic  bool     `json:"is_public"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// ListNotesResponse is the body of GET /api/v1/notes and GET /api/v1/notes/public.
type ListNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
	Tags  []string       `json:"tags"`
	Total int            `json:"total"`
}

// NoteFromEntity maps a domain note to its API shape.
func NoteFromEntity(note *entities.Note) NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		IsPublic:  note.IsPublic,
		CreatedAt: note.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NotesFromEntities maps a note list to its API shape.
func NotesFromEntities(notes []*entities.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, NoteFromEntity(note))
	}
	return out
}

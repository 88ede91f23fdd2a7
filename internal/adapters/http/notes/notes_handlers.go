// Package notes contains the HTTP handlers for the owner-scoped note routes.
package notes

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehub/internal/app"
	"notehub/internal/app/dto"
	"notehub/internal/domain/entities"
	"notehub/internal/domain/filter"
	"notehub/internal/ports/services"
	"notehub/pkg/logger"
)

// Handler log and error messages.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// renderHTML is the value of the render query parameter that requests
// server-side Markdown rendering.
const renderHTML = "html"

// NotesService is the application surface the handlers call.
type NotesService interface {
	List(ctx context.Context) ([]*entities.Note, error)
	Create(ctx context.Context, title, content string, tags []string) (*entities.Note, error)
	Get(ctx context.Context, noteID string) (*entities.Note, error)
	Update(ctx context.Context, noteID string, patch entities.NotePatch) (*entities.Note, error)
	Delete(ctx context.Context, noteID string) error
}

// Handler serves the owner-scoped note routes.
type Handler struct {
	notesService NotesService
	renderer     services.Renderer
}

// NewHandler creates a notes handler.
func NewHandler(notesService NotesService, renderer services.Renderer) *Handler {
	return &Handler{
		notesService: notesService,
		renderer:     renderer,
	}
}

// userContext returns the session-carrying context placed by the auth
// middleware, falling back to the request context.
func userContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals("userContext").(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

// CreateNote handles POST /api/v1/notes.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx := userContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgInvalidRequestBody})
	}

	note, err := h.notesService.Create(userCtx, req.Title, req.Content, req.Tags)
	if err != nil {
		log.Error(userCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.NoteFromEntity(note))
}

// GetNote handles GET /api/v1/notes/:note_id. With render=html the content is
// also returned as rendered Markdown.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	userCtx := userContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(userCtx, LogHandlerGetNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgInvalidNoteID})
	}

	note, err := h.notesService.Get(userCtx, noteID)
	if err != nil {
		log.Debug(userCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err)
	}

	resp := dto.NoteFromEntity(note)
	if ctx.Query("render") == renderHTML {
		resp.HTML = h.render(userCtx, note)
	}

	return ctx.JSON(resp)
}

// ListNotes handles GET /api/v1/notes. The q parameter filters by
// case-insensitive substring over title and content; the tags parameter is a
// comma-separated list matched exactly against note tags. The tag facets are
// computed over the unfiltered list.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx := userContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	notes, err := h.notesService.List(userCtx)
	if err != nil {
		log.Error(userCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	facets := filter.DistinctTags(notes)
	filtered := filter.Filter(notes, ctx.Query("q"), splitTags(ctx.Query("tags")))

	resp := dto.ListNotesResponse{
		Notes: dto.NotesFromEntities(filtered),
		Tags:  facets,
		Total: len(filtered),
	}

	if ctx.Query("render") == renderHTML {
		for i, note := range filtered {
			resp.Notes[i].HTML = h.render(userCtx, note)
		}
	}

	return ctx.JSON(resp)
}

// UpdateNote handles PUT and PATCH /api/v1/notes/:note_id.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	userCtx := userContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(userCtx, LogHandlerUpdateNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgInvalidNoteID})
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgInvalidRequestBody})
	}

	note, err := h.notesService.Update(userCtx, noteID, req.Patch())
	if err != nil {
		log.Debug(userCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	return ctx.JSON(dto.NoteFromEntity(note))
}

// DeleteNote handles DELETE /api/v1/notes/:note_id.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	userCtx := userContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(userCtx, LogHandlerDeleteNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgInvalidNoteID})
	}

	if err := h.notesService.Delete(userCtx, noteID); err != nil {
		log.Debug(userCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// render returns the note content as HTML, or an empty string when rendering
// fails. A broken document never fails the whole request.
func (h *Handler) render(ctx context.Context, note *entities.Note) string {
	html, err := h.renderer.Render(note.Content)
	if err != nil {
		logger.Log(ctx).Warn(ctx, "failed to render note content",
			zap.String("noteID", note.ID), zap.Error(err))
		return ""
	}
	return html
}

// splitTags parses the comma-separated tags query parameter. Tag matching
// stays case-sensitive, so the values are only trimmed.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// handleError maps application errors to HTTP statuses.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrNoSession):
		return ctx.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, entities.ErrEmptyTitle):
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
}

// Package public contains the HTTP handlers for the unauthenticated public
// note routes.
package public

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehub/internal/app/dto"
	"notehub/internal/domain/entities"
	"notehub/internal/domain/filter"
	"notehub/internal/ports/services"
	"notehub/pkg/logger"
)

// Handler log and error messages.
const (
	LogHandlerGetPublicNote   = "handling get public note request"
	LogHandlerListPublicNotes = "handling list public notes request"

	ErrMsgInvalidNoteID = "invalid note id"
	ErrMsgNoteNotFound  = "note not found"
)

// PublicService is the application surface the handlers call.
type PublicService interface {
	GetPublic(ctx context.Context, noteID string) (*entities.Note, error)
	ListPublic(ctx context.Context) ([]*entities.Note, error)
}

// Handler serves the public note routes. Public notes are always returned
// with rendered content so anonymous readers never need a Markdown client.
type Handler struct {
	publicService PublicService
	renderer      services.Renderer
}

// NewHandler creates a public notes handler.
func NewHandler(publicService PublicService, renderer services.Renderer) *Handler {
	return &Handler{
		publicService: publicService,
		renderer:      renderer,
	}
}

// GetPublicNote handles GET /public/:note_id. A private or absent note is a
// plain 404; the two cases are indistinguishable on the wire.
func (h *Handler) GetPublicNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetPublicNote"))
	log.Debug(requestCtx, LogHandlerGetPublicNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgInvalidNoteID})
	}

	note, err := h.publicService.GetPublic(requestCtx, noteID)
	if err != nil {
		log.Error(requestCtx, "failed to get public note", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
	if note == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: ErrMsgNoteNotFound})
	}

	resp := dto.NoteFromEntity(note)
	resp.HTML = h.render(requestCtx, note)

	return ctx.JSON(resp)
}

// ListPublicNotes handles GET /public.
func (h *Handler) ListPublicNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListPublicNotes"))
	log.Debug(requestCtx, LogHandlerListPublicNotes)

	notes, err := h.publicService.ListPublic(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list public notes", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}

	return ctx.JSON(dto.ListNotesResponse{
		Notes: dto.NotesFromEntities(notes),
		Tags:  filter.DistinctTags(notes),
		Total: len(notes),
	})
}

func (h *Handler) render(ctx context.Context, note *entities.Note) string {
	html, err := h.renderer.Render(note.Content)
	if err != nil {
		logger.Log(ctx).Warn(ctx, "failed to render note content",
			zap.String("noteID", note.ID), zap.Error(err))
		return ""
	}
	return html
}

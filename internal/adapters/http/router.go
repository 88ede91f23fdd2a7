// Package http wires the HTTP routes of the note service.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notehub/internal/adapters/http/auth"
	"notehub/internal/adapters/http/middleware"
	"notehub/internal/adapters/http/notes"
	"notehub/internal/adapters/http/public"
	"notehub/internal/app"
	"notehub/internal/ports/services"
)

// SetupRouter registers every route of the service on the fiber app.
func SetupRouter(fiberApp *fiber.App, authUseCase *app.AuthUseCase, noteUseCase *app.NoteUseCase, tokenService services.TokenService, renderer services.Renderer) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase, renderer)
	publicHandler := public.NewHandler(noteUseCase, renderer)

	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())

	apiV1 := fiberApp.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	userRoutes := apiV1.Group("/user")
	userRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	userRoutes.Get("/profile", authHandler.GetProfile)

	// Public notes are addressed at /public/:note_id, outside the
	// authenticated API surface.
	publicRoutes := fiberApp.Group("/public")
	publicRoutes.Get("/", publicHandler.ListPublicNotes)
	publicRoutes.Get("/:note_id", publicHandler.GetPublicNote)

	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Patch("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	fiberApp.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}

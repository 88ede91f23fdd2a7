// Package auth contains the HTTP handlers for registration, login and
// profile lookup.
package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehub/internal/app"
	"notehub/internal/app/dto"
	"notehub/internal/domain/entities"
	"notehub/pkg/logger"
)

// Handler log and error messages.
const (
	LogHandlerRegister   = "handling register request"
	LogHandlerLogin      = "handling login request"
	LogHandlerGetProfile = "handling get profile request"

	ErrMsgInvalidRequestBody  = "invalid request body"
	ErrMsgCredentialsRequired = "email and password are required"
)

// AuthService is the application surface the handlers call.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*entities.User, string, error)
	Login(ctx context.Context, email, password string) (*entities.User, string, error)
	Profile(ctx context.Context) (*entities.User, error)
}

// Handler serves the auth routes.
type Handler struct {
	authService AuthService
}

// NewHandler creates an auth handler.
func NewHandler(authService AuthService) *Handler {
	return &Handler{authService: authService}
}

// Register handles POST /api/v1/auth/register.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgInvalidRequestBody})
	}

	if req.Email == "" || req.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgCredentialsRequired})
	}

	user, token, err := h.authService.Register(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(requestCtx, "registration failed", zap.Error(err))
		return handleError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		User:        dto.UserFromEntity(user),
		AccessToken: token,
	})
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgInvalidRequestBody})
	}

	if req.Email == "" || req.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ErrMsgCredentialsRequired})
	}

	user, token, err := h.authService.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(requestCtx, "login failed", zap.Error(err))
		return handleError(ctx, err)
	}

	return ctx.JSON(dto.AuthResponse{
		User:        dto.UserFromEntity(user),
		AccessToken: token,
	})
}

// GetProfile handles GET /api/v1/user/profile.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	userCtx, ok := ctx.Locals("userContext").(context.Context)
	if !ok {
		userCtx = ctx.Context()
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.GetProfile"))
	log.Debug(userCtx, LogHandlerGetProfile)

	user, err := h.authService.Profile(userCtx)
	if err != nil {
		log.Debug(userCtx, "profile lookup failed", zap.Error(err))
		return handleError(ctx, err)
	}

	return ctx.JSON(dto.UserFromEntity(user))
}

// handleError maps auth errors to HTTP statuses.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrUserAlreadyExists):
		return ctx.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrInvalidCredentials):
		return ctx.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrNoSession):
		return ctx.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrInvalidEmail), errors.Is(err, app.ErrWeakPassword):
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrUserNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
}

// Package middleware contains the HTTP middleware of the note service.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehub/internal/ports/services"
	"notehub/internal/session"
	"notehub/pkg/logger"
)

// Auth middleware messages.
const (
	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// UserContextKey is the Locals key holding the session-carrying context for
// downstream handlers.
const UserContextKey = "userContext"

// NewAuthMiddleware validates the bearer token and stores a session-carrying
// context in Locals. Requests without a valid token never reach the handler.
func NewAuthMiddleware(tokenService services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		sess, err := tokenService.ValidateAccessToken(requestCtx, token)
		if err != nil {
			if errors.Is(err, services.ErrExpiredToken) {
				log.Debug(requestCtx, "token expired")
			} else {
				log.Debug(requestCtx, "token validation failed", zap.Error(err))
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			})
		}

		ctx.Locals(UserContextKey, session.NewContext(requestCtx, sess))

		return ctx.Next()
	}
}

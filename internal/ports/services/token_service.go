// Package services defines the service interfaces of the note service.
package services

import (
	"context"
	"errors"

	"notehub/internal/session"
)

// Token errors.
var (
	ErrInvalidToken = errors.New("invalid access token")
	ErrExpiredToken = errors.New("access token has expired")
)

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateAccessToken issues a signed token for the session.
	GenerateAccessToken(ctx context.Context, sess session.Session) (string, error)

	// ValidateAccessToken verifies the token and returns the session it was
	// issued for.
	ValidateAccessToken(ctx context.Context, token string) (session.Session, error)
}

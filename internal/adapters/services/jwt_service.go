// Package services provides implementations of the service interfaces.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"notehub/internal/ports/services"
	"notehub/internal/session"
	"notehub/pkg/logger"
)

// JWT log messages.
const (
	msgValidatingToken = "validating token"
	msgTokenValidated  = "token validated successfully"
	msgInvalidToken    = "invalid token format"
	msgTokenExpired    = "token has expired"
	msgErrParsingToken = "error parsing token" //nolint:gosec
	errCtxValidating   = "validating token"
	errCtxGenerating   = "generating token"
)

// ErrInvalidAlgorithm reports an unexpected signing algorithm.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims adapts the session to the JWT library's claims model.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// ServiceJWT implements services.TokenService with HMAC-signed tokens.
type ServiceJWT struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewJWT creates the JWT token service.
func NewJWT(secretKey string, tokenTTL time.Duration) services.TokenService {
	return &ServiceJWT{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// GenerateAccessToken issues a signed token for the session.
func (s *ServiceJWT) GenerateAccessToken(ctx context.Context, sess session.Session) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "ServiceJWT.GenerateAccessToken"))

	now := time.Now()
	claims := Claims{
		UserID: sess.UserID,
		Email:  sess.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			Subject:   sess.UserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, "failed to sign token", zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxGenerating, err)
	}

	log.Debug(ctx, "access token issued", zap.String("userID", sess.UserID))
	return signed, nil
}

// ValidateAccessToken verifies the token and returns its session.
func (s *ServiceJWT) ValidateAccessToken(ctx context.Context, tokenString string) (session.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", "ServiceJWT.ValidateAccessToken"))
	log.Debug(ctx, msgValidatingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return session.Session{}, fmt.Errorf("%s: %w", errCtxValidating, services.ErrExpiredToken)
		}
		log.Error(ctx, msgErrParsingToken, zap.Error(err))
		return session.Session{}, fmt.Errorf("%s: %w", errCtxValidating, services.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return session.Session{}, fmt.Errorf("%s: %w", errCtxValidating, services.ErrInvalidToken)
	}

	if claims.UserID == "" {
		log.Debug(ctx, "user_id claim is empty")
		return session.Session{}, fmt.Errorf("%s: %w", errCtxValidating, services.ErrInvalidToken)
	}

	log.Debug(ctx, msgTokenValidated, zap.String("userID", claims.UserID))
	return session.Session{UserID: claims.UserID, Email: claims.Email}, nil
}

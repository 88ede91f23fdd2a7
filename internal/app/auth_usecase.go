package app

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"go.uber.org/zap"

	"notehub/internal/domain/entities"
	"notehub/internal/ports/repositories"
	"notehub/internal/ports/services"
	"notehub/internal/session"
	"notehub/pkg/logger"
)

// Auth errors.
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

// AuthUseCase implements registration, login and profile lookup. It is the
// session provider of the service: a successful register or login yields the
// access token the auth middleware later turns back into a session.
type AuthUseCase struct {
	userRepo        repositories.UserRepository
	passwordService services.PasswordService
	tokenService    services.TokenService
}

// NewAuthUseCase creates the auth use case.
func NewAuthUseCase(userRepo repositories.UserRepository, passwordService services.PasswordService, tokenService services.TokenService) *AuthUseCase {
	return &AuthUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Register creates an account and returns it with a fresh access token.
func (uc *AuthUseCase) Register(ctx context.Context, email, password string) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", "AuthUseCase.Register"))

	if err := validateEmail(email); err != nil {
		return nil, "", err
	}
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hash, err := uc.passwordService.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.userRepo.Create(ctx, email, hash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, session.Session{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info(ctx, "user registered", zap.String("userID", user.ID))
	return user, token, nil
}

// Login verifies the credentials and returns the account with a fresh access
// token. A missing account and a wrong password are indistinguishable to the
// caller.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", "AuthUseCase.Login"))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !uc.passwordService.Verify(user.PasswordHash, password) {
		log.Debug(ctx, "password mismatch", zap.String("userID", user.ID))
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, session.Session{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info(ctx, "user logged in", zap.String("userID", user.ID))
	return user, token, nil
}

// Profile returns the account of the active session.
func (uc *AuthUseCase) Profile(ctx context.Context) (*entities.User, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	user, err := uc.userRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

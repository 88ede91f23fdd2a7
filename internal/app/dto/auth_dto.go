package dto

import "notehub/internal/domain/entities"

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the account and its access token after register or
// login.
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

// UserResponse is an account as returned by the API. The password hash never
// leaves the service.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserFromEntity maps a domain user to its API shape.
func UserFromEntity(user *entities.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

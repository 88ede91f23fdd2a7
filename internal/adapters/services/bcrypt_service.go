package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"notehub/internal/ports/services"
)

// ServiceBcrypt implements services.PasswordService with bcrypt.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt creates the bcrypt password service. A non-positive cost falls
// back to the library default.
func NewBcrypt(cost int) services.PasswordService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash returns the bcrypt hash of the password.
func (s *ServiceBcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the password matches the hash.
func (s *ServiceBcrypt) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

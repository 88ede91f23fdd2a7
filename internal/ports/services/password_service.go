package services

// PasswordService hashes and verifies account passwords.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

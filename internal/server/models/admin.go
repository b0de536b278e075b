// Package models holds server-only records. Shared user and enrollment
// shapes live in internal/models.
package models

// AdminAccount is a stored administrator with its argon2id password hash.
type AdminAccount struct {
	Email        string
	PasswordHash string
}

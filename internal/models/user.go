package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account. All contacts and tags hang off
// a user; there is no sharing between accounts.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the login name (unique).
	Username string

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser builds a user with a fresh ID and creation timestamp.
func NewUser(username, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

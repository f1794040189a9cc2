// Package auth implements email/password accounts with opaque session
// tokens, and stores the user profile record created at sign-up.
package auth

import (
	"errors"
	"time"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("not signed in")
	ErrNotFound           = errors.New("user not found")
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// User is the profile record kept for each account.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	passwordHash   string
}

// Session is the result of a successful sign-in. Token is only available
// here; the store keeps a hash of it.
type Session struct {
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

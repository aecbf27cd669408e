package domain

import (
	"errors"
	"time"
)

// User represents a registered account holder. The ledger engine only
// ever references users by ID; the credential hash is opaque to it.
type User struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Authentication errors
var (
	ErrUnauthorized = errors.New("incorrect email or password")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

package user

import (
	"context"
	"errors"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrNotFound          = errors.New("user not found")
)

// Store persists user records. Uniqueness of usernames is enforced by
// the store itself, never by callers checking first.
type Store interface {
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}

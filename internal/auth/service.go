package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ducbidapne/HTTPWebServer/internal/logger"
	"github.com/ducbidapne/HTTPWebServer/internal/user"
)

// ErrInvalidCredentials covers unknown usernames and wrong passwords
// alike so callers cannot tell which half of the credential failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	users user.Store
}

func NewService(users user.Store) *Service {
	return &Service{users: users}
}

// Register creates a new account and returns its user ID. Duplicate
// usernames surface as user.ErrDuplicateUsername.
func (s *Service) Register(
	ctx context.Context,
	username string,
	password string,
) (string, error) {

	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.New("username required")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	u, err := s.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return "", err
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	return u.ID.String(), nil
}

// Authenticate verifies the credentials and returns the user ID.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (string, error) {

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			logger.Error("credential lookup failed", map[string]any{
				"error": err.Error(),
			})
		}
		// hide whether the user exists or not
		return "", ErrInvalidCredentials
	}

	if !VerifyPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return u.ID.String(), nil
}

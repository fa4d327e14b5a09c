package ports

import (
	"context"

	"github.com/scribbly/notes-api/internal/core/domain"
)

// AuthService defines account use cases.
type AuthService interface {
	// Register creates an account and returns the user with a session token.
	Register(ctx context.Context, fullName, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// GetUser re-fetches the account by id; claims are never trusted for
	// field freshness.
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

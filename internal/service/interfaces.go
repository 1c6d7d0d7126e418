package service

import (
	"context"

	"github.com/avoronin/go-user-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_service_mock.go -package=mock

// AuthService is the account and session-resolution contract consumed by the
// transport layer.
//
// Sign-out has no server-side state and therefore no method here: clearing
// the session cookie is entirely a transport concern.
type AuthService interface {
	// SignUp registers a new account and returns the persisted user.
	// Returns store.ErrEmailAlreadyExists if the email is taken.
	SignUp(ctx context.Context, name, email, password string) (models.User, error)

	// SignIn verifies the password for the account registered under email.
	// Returns store.ErrNoUserWasFound for an unknown email and
	// ErrWrongPassword for a bad password.
	SignIn(ctx context.Context, email, password string) (models.User, error)

	// ResolveSession maps a session identifier back to its user.
	// Returns ErrNotAuthenticated for an empty or unknown identifier.
	ResolveSession(ctx context.Context, userID string) (models.User, error)
}

package store

import (
	"context"

	"github.com/avoronin/go-user-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the persistence contract consumed by the auth service.
//
// CreateUser relies on the database's unique index on email for atomic
// check-and-insert semantics: two concurrent sign-ups for the same email
// race at the INSERT, and the loser receives [ErrEmailAlreadyExists].
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record.
	// Returns ErrEmailAlreadyExists if the email is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by its email identity key.
	// Returns ErrNoUserWasFound if no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by its opaque id.
	// Returns ErrNoUserWasFound if no such user exists.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Each backend supplies its own implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

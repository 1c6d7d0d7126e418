package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronin/go-user-gate/internal/crypto"
	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/store"
	"github.com/avoronin/go-user-gate/internal/utils"
	"github.com/avoronin/go-user-gate/models"
)

// authService is the concrete implementation of AuthService.
// It handles sign-up, credential verification, and session resolution using
// a UserRepository for persistence and a PasswordHasher for the slow KDF.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies stored credentials. All KDF work funnels
	// through it, so its concurrency budget bounds the whole service.
	hasher crypto.PasswordHasher

	// uuidGenerator assigns opaque user identifiers at sign-up.
	uuidGenerator *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// The plaintext password is turned into a stored credential by the hasher
// before anything touches the repository; the plaintext itself is never
// persisted or logged. The email uniqueness check is delegated to the
// repository's unique index, so concurrent sign-ups for the same email
// resolve atomically: exactly one wins, the rest get
// store.ErrEmailAlreadyExists.
//
// Returns the persisted user (with the assigned UserID) or:
//   - ErrInvalidDataProvided if name, email or password is empty.
//   - store.ErrEmailAlreadyExists if the email is already registered.
//   - A wrapped hashing or storage error otherwise.
func (a *authService) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid sign-up data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	credential, err := a.hasher.Hash(ctx, password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("credential derivation failed")
		return models.User{}, fmt.Errorf("credential derivation failed: %w", err)
	}

	user := models.User{
		UserID:     a.uuidGenerator.Generate(),
		Name:       name,
		Email:      email,
		Credential: credential,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, err
		}

		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// SignIn authenticates an existing user.
//
// The lookup and the KDF comparison are both read-only. A mismatch and an
// unknown email are reported as distinct errors; collapsing them is left to
// callers that want enumeration resistance.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrNoUserWasFound if no account exists for the email.
//   - ErrWrongPassword if the password does not match.
//   - A wrapped verification error if the stored credential is unreadable.
func (a *authService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid sign-in data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, err
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(ctx, password, foundUser.Credential)
	if err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("credential verification failed")
		return models.User{}, fmt.Errorf("credential verification failed: %w", err)
	}
	if !ok {
		log.Warn().Str("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// ResolveSession maps an opaque session identifier back to its user record.
//
// An empty or unknown identifier is a normal negative result, reported as
// ErrNotAuthenticated without error-level logging: anonymous requests ask
// this question all the time.
func (a *authService) ResolveSession(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrNotAuthenticated
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrNotAuthenticated
		}

		log.Err(err).Str("id", userID).Msg("session resolution failed")
		return models.User{}, fmt.Errorf("session resolution failed: %w", err)
	}

	return foundUser, nil
}

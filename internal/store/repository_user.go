package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/models"
)

// findRetryAttempts bounds how many times a read query is retried when the
// backend reports a transient failure.
const findRetryAttempts = 3

// userRepository is the SQL-backed implementation of [UserRepository].
// It works against both supported backends through the [DB] wrapper.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned created_at.
//
// Error handling:
//   - Backend unique violation on email → [ErrEmailAlreadyExists]. The
//     unique index is what makes sign-up's check-and-insert atomic.
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
//   - Scan failure → wrapped [ErrScanningRow].
//
// The INSERT is never retried: it is not idempotent, and a unique violation
// carries domain meaning.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.createUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, err
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.UserID, &created.Name, &created.Email, &created.Credential, &created.CreatedAt); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email matches exactly
// (case-preserved, per the identity-key contract).
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

// FindUserByID retrieves the user with the given opaque id.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "user_id", id)
}

// findUser runs a single-row lookup with bounded retries on transient
// backend failures.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoUserWasFound].
//   - Retryable driver error (per the backend classifier) → retried up to
//     [findRetryAttempts] times with a linear backoff.
//   - Any other error → wrapped [ErrExecutingQuery].
func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: building query")
		return models.User{}, err
	}

	var lastErr error
	for attempt := 1; attempt <= findRetryAttempts; attempt++ {
		var found models.User
		row := r.db.QueryRowContext(ctx, query, args...)
		err := row.Scan(&found.UserID, &found.Name, &found.Email, &found.Credential, &found.CreatedAt)
		if err == nil {
			return found, nil
		}

		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		lastErr = err
		if r.db.errorClassificator.Classify(err) != Retryable {
			break
		}

		log.Warn().Err(err).
			Str("func", "*userRepository.findUser").
			Int("attempt", attempt).
			Msg("retryable DB error during user lookup")

		select {
		case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
		case <-ctx.Done():
			return models.User{}, ctx.Err()
		}
	}

	log.Err(lastErr).Str("func", "*userRepository.findUser").Msg("error: user lookup failed")
	return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, lastErr)
}

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/migrations"
)

// DB wraps the raw *sql.DB with everything the repositories need to stay
// backend-agnostic: the goose dialect, the placeholder style the backend
// expects, a unique-violation detector and a retry classifier.
type DB struct {
	*sql.DB

	// dialect is the goose dialect name ("pgx" or "sqlite3").
	dialect string

	// placeholder is the squirrel placeholder format matching the driver.
	placeholder sq.PlaceholderFormat

	// isUniqueViolation reports whether err is the backend's
	// unique-constraint violation.
	isUniqueViolation func(error) bool

	errorClassificator ErrorClassificator

	logger *logger.Logger
}

// Migrate applies the embedded schema migrations for this connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder configured with this
// backend's placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

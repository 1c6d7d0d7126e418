package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/avoronin/go-user-gate/models"
)

// userColumns is the canonical column order shared by every user query and
// the corresponding Scan calls.
var userColumns = []string{"user_id", "name", "email", "credential", "created_at"}

// createUserQuery builds the INSERT for a new user. The RETURNING clause
// hands back the canonical database representation, including the
// server-side created_at.
func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder().
		Insert(user.TableName()).
		Columns("user_id", "name", "email", "credential").
		Values(user.UserID, user.Name, user.Email, user.Credential).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// findUserQuery builds a SELECT filtered by the given column ("email" or
// "user_id").
func (db *DB) findUserQuery(column, value string) (string, []any, error) {
	query, args, err := db.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

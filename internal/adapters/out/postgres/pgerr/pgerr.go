// Package pgerr translates PostgreSQL errors raised through GORM into errors
// the repositories document.
package pgerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateID is returned by Add for an id that is already stored.
var ErrDuplicateID = errors.New("postgres: duplicate id")

// SQLSTATE unique_violation.
const uniqueViolation = "23505"

// Translate maps a unique-key violation on an insert of entity id to
// ErrDuplicateID. Other errors are returned unchanged.
func Translate(err error, entity string, id fmt.Stringer) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s %s (%s)", ErrDuplicateID, entity, id, pgErr.ConstraintName)
	}
	return err
}

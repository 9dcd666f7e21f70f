package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code for a unique-constraint hit.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The count-then-insert username checks run under READ
// COMMITTED, so a concurrent writer can still win the race; the loser's
// constraint error maps onto the same Conflict the check produces.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

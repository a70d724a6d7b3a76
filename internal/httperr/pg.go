package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// IsExclusionConflict reports whether the database rejected a write because
// it overlaps a live row (unique slot index or exclusion constraint).
func IsExclusionConflict(err error) bool {
	code := pgCode(err)
	return code == pgExclusionViolation || code == pgUniqueViolation
}

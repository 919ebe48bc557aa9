package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors the HTTP layer maps to status codes. Repositories and
// services wrap these with context via %w.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
)

// isUniqueViolation reports whether err is a Postgres unique (or primary
// key) constraint violation. The constraint is the final arbiter for
// room-number races; the pre-checks only exist for friendlier messages.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

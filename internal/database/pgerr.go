package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the stores react to.
const (
	CodeUniqueViolation  = "23505"
	CodeLockNotAvailable = "55P03"
	CodeDeadlockDetected = "40P01"
)

// PgError returns the Postgres error in err's chain.
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}

	return pgErr, true
}

// IsLockFailure reports whether the statement was aborted by lock_timeout or deadlock detection.
// Both leave the transaction unusable and the request safe to retry.
func IsLockFailure(err error) bool {
	pgErr, ok := PgError(err)
	if !ok {
		return false
	}

	return pgErr.Code == CodeLockNotAvailable || pgErr.Code == CodeDeadlockDetected
}

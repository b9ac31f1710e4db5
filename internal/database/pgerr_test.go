package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsLockFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "LockTimeout", err: &pgconn.PgError{Code: CodeLockNotAvailable}, want: true},
		{name: "Deadlock", err: &pgconn.PgError{Code: CodeDeadlockDetected}, want: true},
		{name: "Wrapped", err: fmt.Errorf("scan: %w", &pgconn.PgError{Code: CodeLockNotAvailable}), want: true},
		{name: "UniqueViolation", err: &pgconn.PgError{Code: CodeUniqueViolation}},
		{name: "Plain", err: errors.New("connection reset")},
		{name: "Nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLockFailure(tt.err))
		})
	}
}

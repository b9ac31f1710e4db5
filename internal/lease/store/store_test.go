package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/leasedesk/internal/database"
	"github.com/MrJamesThe3rd/leasedesk/internal/database/dbtest"
	"github.com/MrJamesThe3rd/leasedesk/internal/lease"
)

func TestMapError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name    string
		err     error
		wantErr error
		wantPg  bool
	}{
		{
			name:    "PendingNegotiationExists",
			err:     &pgconn.PgError{Code: database.CodeUniqueViolation, ConstraintName: pendingIndex},
			wantErr: lease.ErrConflictingNegotiation,
		},
		{
			name:    "LeaseAlreadyExists",
			err:     &pgconn.PgError{Code: database.CodeUniqueViolation, ConstraintName: leaseDraftKey},
			wantErr: lease.ErrNotFinalizable,
		},
		{
			name:   "OtherUniqueViolation",
			err:    &pgconn.PgError{Code: database.CodeUniqueViolation, ConstraintName: "lease_drafts_pkey"},
			wantPg: true,
		},
		{
			name:    "LockNotAvailable",
			err:     &pgconn.PgError{Code: database.CodeLockNotAvailable},
			wantErr: lease.ErrLockTimeout,
		},
		{
			name:    "DeadlockDetected",
			err:     &pgconn.PgError{Code: database.CodeDeadlockDetected},
			wantErr: lease.ErrLockTimeout,
		},
		{
			name:   "OtherPostgresError",
			err:    &pgconn.PgError{Code: "23503"},
			wantPg: true,
		},
		{
			name:    "NotPostgres",
			err:     plain,
			wantErr: plain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError("op", tt.err)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			if tt.wantPg {
				var pgErr *pgconn.PgError
				require.True(t, errors.As(err, &pgErr))
				assert.Equal(t, "internal", lease.Kind(err))
			}
		})
	}
}

func TestMapError_UniqueViolationKinds(t *testing.T) {
	pending := mapError("creating negotiation",
		&pgconn.PgError{Code: database.CodeUniqueViolation, ConstraintName: pendingIndex})
	assert.Equal(t, lease.Kind(lease.ErrConflictingNegotiation), lease.Kind(pending))

	duplicate := mapError("creating lease",
		&pgconn.PgError{Code: database.CodeUniqueViolation, ConstraintName: leaseDraftKey})
	assert.Equal(t, lease.Kind(lease.ErrNotFinalizable), lease.Kind(duplicate))
}

func TestStore_ReadLockFailure(t *testing.T) {
	db := dbtest.Failing(&pgconn.PgError{Code: database.CodeLockNotAvailable})
	t.Cleanup(func() { _ = db.Close() })

	s := New(db, 0)
	ctx := context.Background()

	_, err := s.GetDraft(ctx, uuid.New())
	assert.ErrorIs(t, err, lease.ErrLockTimeout)

	_, err = s.GetNegotiation(ctx, uuid.New())
	assert.ErrorIs(t, err, lease.ErrLockTimeout)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/leasedesk/internal/database"
	"github.com/MrJamesThe3rd/leasedesk/internal/property"
)

// Querier is satisfied by *sql.DB and *sql.Tx, so the registry can run inside a caller's transaction.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Store struct {
	q Querier
}

func New(q Querier) *Store {
	return &Store{q: q}
}

func (s *Store) Status(ctx context.Context, id uuid.UUID) (property.Status, error) {
	return s.status(ctx, `SELECT status FROM properties WHERE id = $1`, id)
}

func (s *Store) LockStatus(ctx context.Context, id uuid.UUID) (property.Status, error) {
	return s.status(ctx, `SELECT status FROM properties WHERE id = $1 FOR UPDATE`, id)
}

func (s *Store) status(ctx context.Context, query string, id uuid.UUID) (property.Status, error) {
	var status string
	if err := s.q.QueryRowContext(ctx, query, id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", property.ErrNotFound
		}

		return "", wrap("reading property status", err)
	}

	return property.Status(status), nil
}

func (s *Store) SetStatus(ctx context.Context, id uuid.UUID, status property.Status) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE properties SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return wrap("updating property status", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating property status: %w", err)
	}

	if n == 0 {
		return property.ErrNotFound
	}

	return nil
}

func wrap(op string, err error) error {
	if database.IsLockFailure(err) {
		return fmt.Errorf("%s: %w", op, errors.Join(property.ErrLockTimeout, err))
	}

	return fmt.Errorf("%s: %w", op, err)
}

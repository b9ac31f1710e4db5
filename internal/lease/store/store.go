package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/MrJamesThe3rd/leasedesk/internal/database"
	"github.com/MrJamesThe3rd/leasedesk/internal/lease"
	"github.com/MrJamesThe3rd/leasedesk/internal/metrics"
	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
	"github.com/MrJamesThe3rd/leasedesk/internal/property"
	propertyStore "github.com/MrJamesThe3rd/leasedesk/internal/property/store"
)

const (
	pendingIndex  = "negotiations_one_pending_idx"
	leaseDraftKey = "leases_draft_id_key"
)

type Store struct {
	db          *sql.DB
	lockTimeout time.Duration
}

func New(db *sql.DB, lockTimeout time.Duration) *Store {
	return &Store{db: db, lockTimeout: lockTimeout}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectDraftColumns = `id, property_id, client_id, current_terms, status, version, created_at, updated_at`

func scanDraft(s scanner) (*lease.Draft, error) {
	var d lease.Draft

	var terms, status string

	if err := s.Scan(&d.ID, &d.PropertyID, &d.ClientID, &terms, &status, &d.Version, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}

	parsed, err := lease.ParseStoredTerms(terms)
	if err != nil {
		return nil, fmt.Errorf("draft %s: %w", d.ID, err)
	}

	d.CurrentTerms = parsed
	d.Status = lease.DraftStatus(status)

	return &d, nil
}

const selectNegotiationColumns = `
	id, draft_id, client_id, proposed_by, proposed_terms, message, status,
	staff_id, staff_response, response_message, responded_at, previous_negotiation_id, created_at
`

func scanNegotiation(s scanner) (*lease.Negotiation, error) {
	var n lease.Negotiation

	var proposedBy, proposed, status string

	var staffResponse, responseMessage sql.NullString

	if err := s.Scan(
		&n.ID, &n.DraftID, &n.ClientID, &proposedBy, &proposed, &n.Message, &status,
		&n.StaffID, &staffResponse, &responseMessage, &n.RespondedAt, &n.PreviousID, &n.CreatedAt,
	); err != nil {
		return nil, err
	}

	terms, err := lease.ParseStoredTerms(proposed)
	if err != nil {
		return nil, fmt.Errorf("negotiation %s: %w", n.ID, err)
	}

	n.ProposedTerms = terms
	n.ProposedBy = lease.Proposer(proposedBy)
	n.Status = lease.NegotiationStatus(status)

	if staffResponse.Valid {
		counter, err := lease.ParseStoredTerms(staffResponse.String)
		if err != nil {
			return nil, fmt.Errorf("negotiation %s response: %w", n.ID, err)
		}

		n.StaffResponse = &counter
	}

	if responseMessage.Valid {
		n.ResponseMessage = &responseMessage.String
	}

	return &n, nil
}

func getDraft(ctx context.Context, q querier, id uuid.UUID, lock bool) (*lease.Draft, error) {
	query := `SELECT ` + selectDraftColumns + ` FROM lease_drafts WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	d, err := scanDraft(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("draft %s: %w", id, lease.ErrNotFound)
		}

		return nil, mapError("getting draft", err)
	}

	return d, nil
}

func getNegotiation(ctx context.Context, q querier, id uuid.UUID, lock bool) (*lease.Negotiation, error) {
	query := `SELECT ` + selectNegotiationColumns + ` FROM negotiations WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	n, err := scanNegotiation(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("negotiation %s: %w", id, lease.ErrNotFound)
		}

		return nil, mapError("getting negotiation", err)
	}

	return n, nil
}

// findActive selects the pending offer that no other offer of the draft points back to.
func findActive(ctx context.Context, q querier, draftID uuid.UUID) (*lease.Negotiation, error) {
	query := `SELECT ` + selectNegotiationColumns + `
		FROM negotiations n
		WHERE n.draft_id = $1 AND n.status = 'pending'
		  AND NOT EXISTS (
			SELECT 1 FROM negotiations s
			WHERE s.draft_id = n.draft_id AND s.previous_negotiation_id = n.id
		  )`

	rows, err := q.QueryContext(ctx, query, draftID)
	if err != nil {
		return nil, mapError("finding active negotiation", err)
	}
	defer rows.Close()

	var active []*lease.Negotiation

	for rows.Next() {
		n, err := scanNegotiation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning negotiation: %w", err)
		}

		active = append(active, n)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("iterating negotiations", err)
	}

	switch len(active) {
	case 0:
		return nil, fmt.Errorf("active negotiation for draft %s: %w", draftID, lease.ErrNotFound)
	case 1:
		return active[0], nil
	default:
		return nil, fmt.Errorf("draft %s has %d pending negotiations: %w", draftID, len(active), lease.ErrConflictingNegotiation)
	}
}

func (s *Store) GetDraft(ctx context.Context, id uuid.UUID) (*lease.Draft, error) {
	return getDraft(ctx, s.db, id, false)
}

func (s *Store) GetNegotiation(ctx context.Context, id uuid.UUID) (*lease.Negotiation, error) {
	return getNegotiation(ctx, s.db, id, false)
}

func (s *Store) FindActiveNegotiation(ctx context.Context, draftID uuid.UUID) (*lease.Negotiation, error) {
	return findActive(ctx, s.db, draftID)
}

func (s *Store) ListNegotiations(ctx context.Context, draftID uuid.UUID) ([]*lease.Negotiation, error) {
	query := `SELECT ` + selectNegotiationColumns + `
		FROM negotiations
		WHERE draft_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, draftID)
	if err != nil {
		return nil, fmt.Errorf("listing negotiations: %w", err)
	}
	defer rows.Close()

	var negs []*lease.Negotiation

	for rows.Next() {
		n, err := scanNegotiation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning negotiation: %w", err)
		}

		negs = append(negs, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating negotiation rows: %w", err)
	}

	return negs, nil
}

func (s *Store) GetLease(ctx context.Context, id uuid.UUID) (*lease.Lease, error) {
	return s.getLease(ctx, "id", id)
}

func (s *Store) GetLeaseByDraft(ctx context.Context, draftID uuid.UUID) (*lease.Lease, error) {
	return s.getLease(ctx, "draft_id", draftID)
}

// getLease looks a lease up by one of its unique columns.
func (s *Store) getLease(ctx context.Context, column string, key uuid.UUID) (*lease.Lease, error) {
	query := `
		SELECT id, draft_id, final_terms, signed_by_client, signed_by_agent, active_from, created_at
		FROM leases
		WHERE ` + column + ` = $1`

	var l lease.Lease

	var terms string

	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&l.ID, &l.DraftID, &terms, &l.SignedByClient, &l.SignedByAgent, &l.ActiveFrom, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("lease by %s %s: %w", column, key, lease.ErrNotFound)
		}

		return nil, fmt.Errorf("getting lease: %w", err)
	}

	if l.FinalTerms, err = lease.ParseStoredTerms(terms); err != nil {
		return nil, fmt.Errorf("lease %s: %w", l.ID, err)
	}

	return &l, nil
}

type tx struct {
	tx *sql.Tx
}

// Begin opens a read-committed transaction whose lock waits are bounded by the store's lock timeout.
func (s *Store) Begin(ctx context.Context) (lease.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	// SET LOCAL takes no bind parameters.
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.lockTimeout.Milliseconds())
	if _, err := dbTx.ExecContext(ctx, stmt); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("setting lock timeout: %w", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return mapError("committing", err)
	}

	return nil
}

func (t *tx) Rollback() error {
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}

	return err
}

func (t *tx) Properties() property.Registry {
	return propertyStore.New(t.tx)
}

func (t *tx) CreateDraft(ctx context.Context, d *lease.Draft) error {
	terms, err := d.CurrentTerms.Encode()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO lease_drafts (property_id, client_id, current_terms, status, version, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = t.tx.QueryRowContext(ctx, query, d.PropertyID, d.ClientID, terms, d.Status, d.Version).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return mapError("creating draft", err)
	}

	return nil
}

func (t *tx) LockDraft(ctx context.Context, id uuid.UUID) (*lease.Draft, error) {
	start := time.Now()
	defer func() { metrics.LockWait("lease_drafts", time.Since(start)) }()

	return getDraft(ctx, t.tx, id, true)
}

func (t *tx) SetDraftTerms(ctx context.Context, id uuid.UUID, terms lease.Terms) error {
	encoded, err := terms.Encode()
	if err != nil {
		return err
	}

	return t.execOne(ctx, "setting draft terms",
		`UPDATE lease_drafts SET current_terms = $1, updated_at = NOW() WHERE id = $2`,
		encoded, id,
	)
}

func (t *tx) SetDraftStatus(ctx context.Context, id uuid.UUID, status lease.DraftStatus) error {
	return t.execOne(ctx, "setting draft status",
		`UPDATE lease_drafts SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
}

func (t *tx) LockNegotiation(ctx context.Context, id uuid.UUID) (*lease.Negotiation, error) {
	start := time.Now()
	defer func() { metrics.LockWait("negotiations", time.Since(start)) }()

	return getNegotiation(ctx, t.tx, id, true)
}

func (t *tx) FindActiveNegotiation(ctx context.Context, draftID uuid.UUID) (*lease.Negotiation, error) {
	return findActive(ctx, t.tx, draftID)
}

func (t *tx) CreateNegotiation(ctx context.Context, n *lease.Negotiation) error {
	terms, err := n.ProposedTerms.Encode()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO negotiations (draft_id, client_id, proposed_by, proposed_terms, message, status, previous_negotiation_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err = t.tx.QueryRowContext(ctx, query,
		n.DraftID, n.ClientID, n.ProposedBy, terms, n.Message, n.Status, n.PreviousID,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return mapError("creating negotiation", err)
	}

	return nil
}

// ResolveNegotiation only moves a row out of pending; a row already resolved reports ErrAlreadyResolved.
func (t *tx) ResolveNegotiation(ctx context.Context, n *lease.Negotiation) error {
	var counter *string

	if n.StaffResponse != nil {
		encoded, err := n.StaffResponse.Encode()
		if err != nil {
			return err
		}

		counter = &encoded
	}

	query := `
		UPDATE negotiations
		SET status = $1, staff_id = $2, staff_response = $3, response_message = $4, responded_at = $5
		WHERE id = $6 AND status = 'pending'
	`

	res, err := t.tx.ExecContext(ctx, query,
		n.Status, n.StaffID, counter, n.ResponseMessage, n.RespondedAt, n.ID,
	)
	if err != nil {
		return mapError("resolving negotiation", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolving negotiation: %w", err)
	}

	if affected == 0 {
		return lease.ErrAlreadyResolved
	}

	return nil
}

func (t *tx) CompleteNegotiations(ctx context.Context, draftID uuid.UUID) (int64, error) {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE negotiations SET status = 'completed' WHERE draft_id = $1`,
		draftID,
	)
	if err != nil {
		return 0, mapError("completing negotiations", err)
	}

	return res.RowsAffected()
}

func (t *tx) CreateLease(ctx context.Context, l *lease.Lease) error {
	terms, err := l.FinalTerms.Encode()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO leases (draft_id, final_terms, signed_by_client, signed_by_agent, active_from, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = t.tx.QueryRowContext(ctx, query,
		l.DraftID, terms, l.SignedByClient, l.SignedByAgent, l.ActiveFrom,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return mapError("creating lease", err)
	}

	return nil
}

func (t *tx) AppendEvent(ctx context.Context, e notify.Event) error {
	payload := e.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	_, err = t.tx.ExecContext(ctx,
		`INSERT INTO lease_events (type, draft_id, entity_id, actor_id, payload, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		e.Type, e.DraftID, e.EntityID, e.ActorID, string(data), e.At,
	)
	if err != nil {
		return mapError("appending event", err)
	}

	return nil
}

func (t *tx) execOne(ctx context.Context, op, query string, args ...any) error {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return fmt.Errorf("%s: %w", op, lease.ErrNotFound)
	}

	return nil
}

// mapError turns Postgres failures the workflow understands into package errors.
func mapError(op string, err error) error {
	if database.IsLockFailure(err) {
		return fmt.Errorf("%s: %w", op, lease.ErrLockTimeout)
	}

	pgErr, ok := database.PgError(err)
	if !ok {
		return fmt.Errorf("%s: %w", op, err)
	}

	if pgErr.Code == database.CodeUniqueViolation {
		switch pgErr.ConstraintName {
		case pendingIndex:
			return lease.ErrConflictingNegotiation
		case leaseDraftKey:
			return fmt.Errorf("%w: lease already exists", lease.ErrNotFinalizable)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

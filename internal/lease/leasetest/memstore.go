// Package leasetest provides an in-memory lease.Repository for tests.
//
// Transactions are fully serialized: Begin waits for the previous transaction to finish,
// which gives the same outcome as the row locks the Postgres store takes for a single draft.
package leasetest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/leasedesk/internal/lease"
	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
	"github.com/MrJamesThe3rd/leasedesk/internal/property"
)

type state struct {
	properties   map[uuid.UUID]property.Status
	drafts       map[uuid.UUID]lease.Draft
	negotiations map[uuid.UUID]lease.Negotiation
	negOrder     []uuid.UUID
	leases       map[uuid.UUID]lease.Lease
	events       []notify.Event
}

func (s *state) clone() *state {
	return &state{
		properties:   cloneMap(s.properties),
		drafts:       cloneMap(s.drafts),
		negotiations: cloneMap(s.negotiations),
		negOrder:     slices.Clone(s.negOrder),
		leases:       cloneMap(s.leases),
		events:       slices.Clone(s.events),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Store is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	committed *state

	// sem holds one token; a transaction owns it from Begin until Commit or Rollback.
	sem         chan struct{}
	LockTimeout time.Duration

	failMu sync.Mutex
	fail   map[string]error
}

func New() *Store {
	s := &Store{
		committed: &state{
			properties:   map[uuid.UUID]property.Status{},
			drafts:       map[uuid.UUID]lease.Draft{},
			negotiations: map[uuid.UUID]lease.Negotiation{},
			leases:       map[uuid.UUID]lease.Lease{},
		},
		sem:         make(chan struct{}, 1),
		LockTimeout: 5 * time.Second,
		fail:        map[string]error{},
	}
	s.sem <- struct{}{}

	return s
}

// FailOn makes the next call of the named Tx method return err.
func (s *Store) FailOn(method string, err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()

	s.fail[method] = err
}

func (s *Store) injected(method string) error {
	s.failMu.Lock()
	defer s.failMu.Unlock()

	err, ok := s.fail[method]
	if ok {
		delete(s.fail, method)
	}

	return err
}

func (s *Store) AddProperty(status property.Status) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.committed.properties[id] = status

	return id
}

func (s *Store) PropertyStatus(id uuid.UUID) property.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.committed.properties[id]
}

// PutDraft stores a draft as-is, bypassing the workflow.
func (s *Store) PutDraft(d lease.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.committed.drafts[d.ID] = d
}

// PutNegotiation stores a negotiation as-is, bypassing the workflow.
func (s *Store) PutNegotiation(n lease.Negotiation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.committed.negotiations[n.ID]; !ok {
		s.committed.negOrder = append(s.committed.negOrder, n.ID)
	}

	s.committed.negotiations[n.ID] = n
}

// Leases returns every committed lease for the draft.
func (s *Store) Leases(draftID uuid.UUID) []lease.Lease {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []lease.Lease

	for _, l := range s.committed.leases {
		if l.DraftID == draftID {
			out = append(out, l)
		}
	}

	return out
}

// Events returns the committed audit events in append order.
func (s *Store) Events() []notify.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.committed.events)
}

func (s *Store) read() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.committed
}

func (s *Store) GetDraft(_ context.Context, id uuid.UUID) (*lease.Draft, error) {
	return s.read().draft(id)
}

func (s *Store) GetNegotiation(_ context.Context, id uuid.UUID) (*lease.Negotiation, error) {
	return s.read().negotiation(id)
}

func (s *Store) ListNegotiations(_ context.Context, draftID uuid.UUID) ([]*lease.Negotiation, error) {
	st := s.read()

	var out []*lease.Negotiation

	for i := len(st.negOrder) - 1; i >= 0; i-- {
		n := st.negotiations[st.negOrder[i]]
		if n.DraftID == draftID {
			out = append(out, &n)
		}
	}

	return out, nil
}

func (s *Store) FindActiveNegotiation(_ context.Context, draftID uuid.UUID) (*lease.Negotiation, error) {
	return s.read().active(draftID)
}

func (s *Store) GetLease(_ context.Context, id uuid.UUID) (*lease.Lease, error) {
	l, ok := s.read().leases[id]
	if !ok {
		return nil, fmt.Errorf("lease %s: %w", id, lease.ErrNotFound)
	}

	return &l, nil
}

func (s *Store) GetLeaseByDraft(_ context.Context, draftID uuid.UUID) (*lease.Lease, error) {
	for _, l := range s.read().leases {
		if l.DraftID == draftID {
			return &l, nil
		}
	}

	return nil, fmt.Errorf("lease for draft %s: %w", draftID, lease.ErrNotFound)
}

func (s *Store) Begin(ctx context.Context) (lease.Tx, error) {
	timer := time.NewTimer(s.LockTimeout)
	defer timer.Stop()

	select {
	case <-s.sem:
	case <-timer.C:
		return nil, lease.ErrLockTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	work := s.committed.clone()
	s.mu.RUnlock()

	return &tx{store: s, st: work}, nil
}

type tx struct {
	store *Store
	st    *state
	done  bool
}

func (t *tx) finish() {
	if !t.done {
		t.done = true
		t.store.sem <- struct{}{}
	}
}

func (t *tx) Commit() error {
	if t.done {
		return errors.New("transaction already finished")
	}

	if err := t.store.injected("Commit"); err != nil {
		t.finish()
		return err
	}

	t.store.mu.Lock()
	t.store.committed = t.st
	t.store.mu.Unlock()

	t.finish()

	return nil
}

func (t *tx) Rollback() error {
	t.finish()
	return nil
}

func (t *tx) Properties() property.Registry {
	return registry{t: t}
}

func (t *tx) CreateDraft(_ context.Context, d *lease.Draft) error {
	if err := t.store.injected("CreateDraft"); err != nil {
		return err
	}

	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	t.st.drafts[d.ID] = *d

	return nil
}

func (t *tx) LockDraft(_ context.Context, id uuid.UUID) (*lease.Draft, error) {
	if err := t.store.injected("LockDraft"); err != nil {
		return nil, err
	}

	return t.st.draft(id)
}

func (t *tx) SetDraftTerms(_ context.Context, id uuid.UUID, terms lease.Terms) error {
	if err := t.store.injected("SetDraftTerms"); err != nil {
		return err
	}

	d, ok := t.st.drafts[id]
	if !ok {
		return fmt.Errorf("draft %s: %w", id, lease.ErrNotFound)
	}

	now := time.Now()
	d.CurrentTerms = terms
	d.UpdatedAt = &now
	t.st.drafts[id] = d

	return nil
}

func (t *tx) SetDraftStatus(_ context.Context, id uuid.UUID, status lease.DraftStatus) error {
	if err := t.store.injected("SetDraftStatus"); err != nil {
		return err
	}

	d, ok := t.st.drafts[id]
	if !ok {
		return fmt.Errorf("draft %s: %w", id, lease.ErrNotFound)
	}

	now := time.Now()
	d.Status = status
	d.UpdatedAt = &now
	t.st.drafts[id] = d

	return nil
}

func (t *tx) LockNegotiation(_ context.Context, id uuid.UUID) (*lease.Negotiation, error) {
	if err := t.store.injected("LockNegotiation"); err != nil {
		return nil, err
	}

	return t.st.negotiation(id)
}

func (t *tx) FindActiveNegotiation(_ context.Context, draftID uuid.UUID) (*lease.Negotiation, error) {
	return t.st.active(draftID)
}

func (t *tx) CreateNegotiation(_ context.Context, n *lease.Negotiation) error {
	if err := t.store.injected("CreateNegotiation"); err != nil {
		return err
	}

	if n.Status == lease.NegotiationPending {
		for _, other := range t.st.negotiations {
			if other.DraftID == n.DraftID && other.Status == lease.NegotiationPending {
				return lease.ErrConflictingNegotiation
			}
		}
	}

	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	t.st.negotiations[n.ID] = *n
	t.st.negOrder = append(t.st.negOrder, n.ID)

	return nil
}

func (t *tx) ResolveNegotiation(_ context.Context, n *lease.Negotiation) error {
	if err := t.store.injected("ResolveNegotiation"); err != nil {
		return err
	}

	cur, ok := t.st.negotiations[n.ID]
	if !ok || cur.Status != lease.NegotiationPending {
		return lease.ErrAlreadyResolved
	}

	cur.Status = n.Status
	cur.StaffID = n.StaffID
	cur.StaffResponse = n.StaffResponse
	cur.ResponseMessage = n.ResponseMessage
	cur.RespondedAt = n.RespondedAt
	t.st.negotiations[n.ID] = cur

	return nil
}

func (t *tx) CompleteNegotiations(_ context.Context, draftID uuid.UUID) (int64, error) {
	if err := t.store.injected("CompleteNegotiations"); err != nil {
		return 0, err
	}

	var n int64

	for id, neg := range t.st.negotiations {
		if neg.DraftID == draftID {
			neg.Status = lease.NegotiationCompleted
			t.st.negotiations[id] = neg
			n++
		}
	}

	return n, nil
}

func (t *tx) CreateLease(_ context.Context, l *lease.Lease) error {
	if err := t.store.injected("CreateLease"); err != nil {
		return err
	}

	for _, other := range t.st.leases {
		if other.DraftID == l.DraftID {
			return fmt.Errorf("%w: lease already exists", lease.ErrNotFinalizable)
		}
	}

	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	t.st.leases[l.ID] = *l

	return nil
}

func (t *tx) AppendEvent(_ context.Context, e notify.Event) error {
	if err := t.store.injected("AppendEvent"); err != nil {
		return err
	}

	t.st.events = append(t.st.events, e)

	return nil
}

type registry struct {
	t *tx
}

func (r registry) Status(_ context.Context, id uuid.UUID) (property.Status, error) {
	status, ok := r.t.st.properties[id]
	if !ok {
		return "", property.ErrNotFound
	}

	return status, nil
}

func (r registry) LockStatus(ctx context.Context, id uuid.UUID) (property.Status, error) {
	return r.Status(ctx, id)
}

func (r registry) SetStatus(_ context.Context, id uuid.UUID, status property.Status) error {
	if err := r.t.store.injected("SetPropertyStatus"); err != nil {
		return err
	}

	if _, ok := r.t.st.properties[id]; !ok {
		return property.ErrNotFound
	}

	r.t.st.properties[id] = status

	return nil
}

func (s *state) draft(id uuid.UUID) (*lease.Draft, error) {
	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, lease.ErrNotFound)
	}

	return &d, nil
}

func (s *state) negotiation(id uuid.UUID) (*lease.Negotiation, error) {
	n, ok := s.negotiations[id]
	if !ok {
		return nil, fmt.Errorf("negotiation %s: %w", id, lease.ErrNotFound)
	}

	return &n, nil
}

func (s *state) active(draftID uuid.UUID) (*lease.Negotiation, error) {
	hasSuccessor := map[uuid.UUID]bool{}

	for _, n := range s.negotiations {
		if n.DraftID == draftID && n.PreviousID != nil {
			hasSuccessor[*n.PreviousID] = true
		}
	}

	var active []lease.Negotiation

	for _, id := range s.negOrder {
		n := s.negotiations[id]
		if n.DraftID == draftID && n.Status == lease.NegotiationPending && !hasSuccessor[n.ID] {
			active = append(active, n)
		}
	}

	switch len(active) {
	case 0:
		return nil, fmt.Errorf("active negotiation for draft %s: %w", draftID, lease.ErrNotFound)
	case 1:
		return &active[0], nil
	default:
		return nil, lease.ErrConflictingNegotiation
	}
}

package lease

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
	"github.com/MrJamesThe3rd/leasedesk/internal/property"
)

// Lease is the immutable artifact of a signed draft.
type Lease struct {
	ID             uuid.UUID
	DraftID        uuid.UUID
	FinalTerms     Terms
	SignedByClient bool
	SignedByAgent  bool
	ActiveFrom     time.Time
	CreatedAt      time.Time
}

type FinalizeAction string

const (
	FinalizeAccept FinalizeAction = "accept"
	FinalizeReject FinalizeAction = "reject"
)

type FinalizeResult struct {
	// Lease is nil when the draft was rejected and reopened.
	Lease       *Lease
	DraftStatus DraftStatus
}

// Finalize converts an approved draft into a Lease, or reopens it for negotiation.
// Accepting writes the lease, the draft, the property and every negotiation of the draft
// in one transaction; any failure leaves all four untouched.
func (s *Service) Finalize(ctx context.Context, actor auth.Actor, draftID uuid.UUID, action FinalizeAction) (res *FinalizeResult, err error) {
	defer func() { s.record("finalize", err) }()

	if action != FinalizeAccept && action != FinalizeReject {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin finalize: %w", err)
	}
	defer tx.Rollback()

	draft, err := tx.LockDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if !canView(actor, draft) {
		return nil, ErrNotFound
	}

	if draft.Status != DraftStatusApproved {
		return nil, fmt.Errorf("%w: draft is %s", ErrNotFinalizable, draft.Status)
	}

	if action == FinalizeReject {
		return s.reopen(ctx, tx, actor, draft)
	}

	if err := Validate(draft.CurrentTerms); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTerms, err)
	}

	start, err := draft.CurrentTerms.StartDate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTerms, err)
	}

	// Re-checked under the row lock; a check made earlier in the request proves nothing.
	if err := checkApprovedAndFree(ctx, tx.Properties(), draft.PropertyID, true); err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrPropertyUnavailable, err)
		}

		return nil, err
	}

	byClient, byAgent := signatures(actor.Role)

	l := &Lease{
		DraftID:        draft.ID,
		FinalTerms:     draft.CurrentTerms,
		SignedByClient: byClient,
		SignedByAgent:  byAgent,
		ActiveFrom:     start,
	}
	if err := tx.CreateLease(ctx, l); err != nil {
		return nil, err
	}

	if err := tx.SetDraftStatus(ctx, draft.ID, DraftStatusSigned); err != nil {
		return nil, err
	}

	if err := tx.Properties().SetStatus(ctx, draft.PropertyID, property.StatusRented); err != nil {
		return nil, registryError("mark property rented", draft.PropertyID, err)
	}

	completed, err := tx.CompleteNegotiations(ctx, draft.ID)
	if err != nil {
		return nil, err
	}

	ev := s.event(notify.LeaseFinalized, draft.ID, l.ID, actor.ID, map[string]any{
		"property_id":            draft.PropertyID,
		"active_from":            start.Format(time.DateOnly),
		"negotiations_completed": completed,
	})
	if err := tx.AppendEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("append finalize event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit finalize: %w", err)
	}

	s.logger.InfoContext(ctx, "lease finalized", "draft_id", draft.ID, "lease_id", l.ID, "property_id", draft.PropertyID)
	s.publish(ctx, ev)

	return &FinalizeResult{Lease: l, DraftStatus: DraftStatusSigned}, nil
}

func (s *Service) reopen(ctx context.Context, tx Tx, actor auth.Actor, draft *Draft) (*FinalizeResult, error) {
	if err := tx.SetDraftStatus(ctx, draft.ID, DraftStatusClientReview); err != nil {
		return nil, err
	}

	ev := s.event(notify.DraftReopened, draft.ID, draft.ID, actor.ID, nil)
	if err := tx.AppendEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("append reopen event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reopen: %w", err)
	}

	s.logger.InfoContext(ctx, "lease draft reopened", "draft_id", draft.ID, "actor_id", actor.ID)
	s.publish(ctx, ev)

	return &FinalizeResult{DraftStatus: DraftStatusClientReview}, nil
}

// signatures derives the signing flags from the finalizing role. Only assistants sign as agent.
func signatures(r auth.Role) (byClient, byAgent bool) {
	switch r {
	case auth.RoleClient:
		return true, false
	case auth.RoleAssistant:
		return false, true
	case auth.RoleManager, auth.RoleSupervisor, auth.RoleOwner:
		return false, false
	default:
		return false, false
	}
}

// GetLease returns a lease; clients only see leases of their own drafts.
func (s *Service) GetLease(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Lease, error) {
	l, err := s.repo.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.GetDraft(ctx, actor, l.DraftID); err != nil {
		return nil, err
	}

	return l, nil
}

// LeaseForDraft returns the lease signed from the draft, if any.
func (s *Service) LeaseForDraft(ctx context.Context, actor auth.Actor, draftID uuid.UUID) (*Lease, error) {
	if _, err := s.GetDraft(ctx, actor, draftID); err != nil {
		return nil, err
	}

	return s.repo.GetLeaseByDraft(ctx, draftID)
}

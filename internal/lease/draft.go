package lease

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
)

// DraftStatus is the lifecycle state of a lease draft.
type DraftStatus string

const (
	DraftStatusDraft         DraftStatus = "draft"
	DraftStatusClientReview  DraftStatus = "client_review"
	DraftStatusManagerReview DraftStatus = "manager_review"
	DraftStatusApproved      DraftStatus = "approved"
	DraftStatusSigned        DraftStatus = "signed"
)

// Draft is a mutable lease proposal for one property and one client.
type Draft struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	ClientID     uuid.UUID
	CurrentTerms Terms
	Status       DraftStatus
	// Version is informational; it stays at 1. Row locks serialize writers.
	Version   int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (d *Draft) negotiable() bool {
	return d.Status == DraftStatusDraft || d.Status == DraftStatusClientReview
}

type CreateDraftParams struct {
	PropertyID uuid.UUID
	ClientID   uuid.UUID
	Terms      json.RawMessage
}

// CreateDraft proposes a property/client/terms triple. Only staff may propose.
func (s *Service) CreateDraft(ctx context.Context, actor auth.Actor, params CreateDraftParams) (d *Draft, err error) {
	defer func() { s.record("create_draft", err) }()

	if !actor.Role.IsStaff() {
		return nil, fmt.Errorf("%w: only staff can create lease drafts", ErrForbidden)
	}

	switch {
	case params.PropertyID == uuid.Nil:
		return nil, missing("property_id")
	case params.ClientID == uuid.Nil:
		return nil, missing("client_id")
	case isAbsent(params.Terms):
		return nil, missing("terms")
	}

	terms, err := DecodeTerms(params.Terms)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create draft: %w", err)
	}
	defer tx.Rollback()

	if err := checkApprovedAndFree(ctx, tx.Properties(), params.PropertyID, false); err != nil {
		return nil, err
	}

	d = &Draft{
		PropertyID:   params.PropertyID,
		ClientID:     params.ClientID,
		CurrentTerms: terms,
		Status:       DraftStatusDraft,
		Version:      1,
	}
	if err := tx.CreateDraft(ctx, d); err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}

	ev := s.event(notify.DraftCreated, d.ID, d.ID, actor.ID, map[string]any{
		"property_id": d.PropertyID,
		"client_id":   d.ClientID,
	})
	if err := tx.AppendEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("append draft event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create draft: %w", err)
	}

	s.logger.InfoContext(ctx, "lease draft created", "draft_id", d.ID, "property_id", d.PropertyID, "actor_id", actor.ID)
	s.publish(ctx, ev)

	return d, nil
}

// GetDraft returns the draft with parsed terms. Clients only see their own drafts.
func (s *Service) GetDraft(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Draft, error) {
	d, err := s.repo.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canView(actor, d) {
		return nil, ErrNotFound
	}

	return d, nil
}

func canView(actor auth.Actor, d *Draft) bool {
	switch actor.Role {
	case auth.RoleClient:
		return d.ClientID == actor.ID
	case auth.RoleAssistant, auth.RoleManager, auth.RoleSupervisor, auth.RoleOwner:
		return true
	default:
		return false
	}
}

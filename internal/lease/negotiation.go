package lease

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
)

// NegotiationStatus is the resolution state of one offer.
type NegotiationStatus string

const (
	NegotiationPending   NegotiationStatus = "pending"
	NegotiationAccepted  NegotiationStatus = "accepted"
	NegotiationRejected  NegotiationStatus = "rejected"
	NegotiationCountered NegotiationStatus = "countered"
	NegotiationCompleted NegotiationStatus = "completed"
)

// Proposer records which side authored an offer.
type Proposer string

const (
	ProposerClient Proposer = "client"
	ProposerStaff  Proposer = "staff"
)

// Action is a response to a pending offer.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionCounter Action = "counter"
)

const (
	defaultStaffCounterMessage  = "Staff counter offer"
	defaultClientCounterMessage = "Client counter offer"
)

// Negotiation is one offer in a draft's chain. PreviousID links a counter-offer to the offer it answers.
type Negotiation struct {
	ID              uuid.UUID
	DraftID         uuid.UUID
	ClientID        uuid.UUID
	ProposedBy      Proposer
	ProposedTerms   Terms
	Message         string
	Status          NegotiationStatus
	StaffID         *uuid.UUID
	StaffResponse   *Terms
	ResponseMessage *string
	RespondedAt     *time.Time
	PreviousID      *uuid.UUID
	CreatedAt       time.Time
}

type OpenParams struct {
	DraftID       uuid.UUID
	ProposedTerms json.RawMessage
	Message       string
}

type OpenResult struct {
	Negotiation *Negotiation
	DraftStatus DraftStatus
}

// OpenNegotiation starts a client offer on a draft that is open for negotiation.
func (s *Service) OpenNegotiation(ctx context.Context, actor auth.Actor, params OpenParams) (res *OpenResult, err error) {
	defer func() { s.record("open_negotiation", err) }()

	switch actor.Role {
	case auth.RoleClient:
	case auth.RoleAssistant, auth.RoleManager, auth.RoleSupervisor, auth.RoleOwner:
		return nil, fmt.Errorf("%w: only clients can initiate negotiations", ErrForbidden)
	default:
		return nil, ErrForbidden
	}

	if params.DraftID == uuid.Nil {
		return nil, missing("draft_id")
	}

	terms, err := DecodeTerms(params.ProposedTerms)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin open negotiation: %w", err)
	}
	defer tx.Rollback()

	draft, err := tx.LockDraft(ctx, params.DraftID)
	if err != nil {
		return nil, err
	}

	if draft.ClientID != actor.ID {
		return nil, ErrNotFound
	}

	if !draft.negotiable() {
		return nil, fmt.Errorf("%w: draft is %s", ErrNotNegotiable, draft.Status)
	}

	if _, err := tx.FindActiveNegotiation(ctx, draft.ID); err == nil {
		return nil, ErrConflictingNegotiation
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("find active negotiation: %w", err)
	}

	n := &Negotiation{
		DraftID:       draft.ID,
		ClientID:      actor.ID,
		ProposedBy:    ProposerClient,
		ProposedTerms: terms,
		Message:       params.Message,
		Status:        NegotiationPending,
	}
	if err := tx.CreateNegotiation(ctx, n); err != nil {
		return nil, err
	}

	if err := tx.SetDraftStatus(ctx, draft.ID, DraftStatusClientReview); err != nil {
		return nil, err
	}

	ev := s.event(notify.NegotiationOpened, draft.ID, n.ID, actor.ID, nil)
	if err := tx.AppendEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("append negotiation event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit open negotiation: %w", err)
	}

	s.logger.InfoContext(ctx, "negotiation opened", "draft_id", draft.ID, "negotiation_id", n.ID)
	s.publish(ctx, ev)

	return &OpenResult{Negotiation: n, DraftStatus: DraftStatusClientReview}, nil
}

type RespondParams struct {
	NegotiationID   uuid.UUID
	Action          Action
	CounterTerms    json.RawMessage
	ResponseMessage string
}

type RespondResult struct {
	Negotiation *Negotiation
	// Counter is the new pending offer when Action is ActionCounter.
	Counter     *Negotiation
	DraftStatus DraftStatus
}

// Respond resolves a pending offer exactly once. Concurrent responders serialize on the
// draft and negotiation row locks; every loser observes ErrAlreadyResolved.
func (s *Service) Respond(ctx context.Context, actor auth.Actor, params RespondParams) (res *RespondResult, err error) {
	defer func() { s.record("respond_negotiation", err) }()

	var counter Terms

	switch params.Action {
	case ActionAccept:
	case ActionCounter:
		if counter, err = DecodeTerms(params.CounterTerms); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, params.Action)
	}

	// draft_id never changes, so the unlocked read only picks which draft row to lock first.
	target, err := s.repo.GetNegotiation(ctx, params.NegotiationID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin respond: %w", err)
	}
	defer tx.Rollback()

	draft, err := tx.LockDraft(ctx, target.DraftID)
	if err != nil {
		return nil, err
	}

	n, err := tx.LockNegotiation(ctx, params.NegotiationID)
	if err != nil {
		return nil, err
	}

	if err := authorizeResponse(actor, draft, n); err != nil {
		return nil, err
	}

	if n.Status != NegotiationPending {
		return nil, fmt.Errorf("%w: negotiation is %s", ErrAlreadyResolved, n.Status)
	}

	now := s.now().UTC()
	n.RespondedAt = &now

	if actor.Role.IsStaff() {
		n.StaffID = &actor.ID
	}

	if params.ResponseMessage != "" {
		n.ResponseMessage = &params.ResponseMessage
	}

	res = &RespondResult{Negotiation: n, DraftStatus: draft.Status}

	switch params.Action {
	case ActionAccept:
		n.Status = NegotiationAccepted

		if err := tx.ResolveNegotiation(ctx, n); err != nil {
			return nil, err
		}

		if err := tx.SetDraftTerms(ctx, draft.ID, n.ProposedTerms); err != nil {
			return nil, err
		}

		if err := tx.SetDraftStatus(ctx, draft.ID, DraftStatusApproved); err != nil {
			return nil, err
		}

		res.DraftStatus = DraftStatusApproved
	case ActionCounter:
		n.Status = NegotiationCountered
		if actor.Role.IsStaff() {
			n.StaffResponse = &counter
		}

		// The original must leave pending before its successor is inserted.
		if err := tx.ResolveNegotiation(ctx, n); err != nil {
			return nil, err
		}

		next := &Negotiation{
			DraftID:       n.DraftID,
			ClientID:      n.ClientID,
			ProposedBy:    ProposerStaff,
			ProposedTerms: counter,
			Message:       params.ResponseMessage,
			Status:        NegotiationPending,
			PreviousID:    &n.ID,
		}

		if !actor.Role.IsStaff() {
			next.ProposedBy = ProposerClient
		}

		if next.Message == "" {
			next.Message = defaultStaffCounterMessage
			if next.ProposedBy == ProposerClient {
				next.Message = defaultClientCounterMessage
			}
		}

		if err := tx.CreateNegotiation(ctx, next); err != nil {
			return nil, err
		}

		res.Counter = next
	}

	payload := map[string]any{"action": string(params.Action)}
	if res.Counter != nil {
		payload["counter_id"] = res.Counter.ID
	}

	ev := s.event(notify.NegotiationResponded, draft.ID, n.ID, actor.ID, payload)
	if err := tx.AppendEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("append response event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit respond: %w", err)
	}

	s.logger.InfoContext(ctx, "negotiation responded",
		"draft_id", draft.ID, "negotiation_id", n.ID, "action", params.Action, "actor_role", actor.Role)
	s.publish(ctx, ev)

	return res, nil
}

// authorizeResponse: staff answer any offer; a client only answers staff counter-offers on their own draft.
func authorizeResponse(actor auth.Actor, draft *Draft, n *Negotiation) error {
	if n.DraftID != draft.ID {
		return ErrBrokenChain
	}

	switch actor.Role {
	case auth.RoleAssistant, auth.RoleManager, auth.RoleSupervisor, auth.RoleOwner:
		return nil
	case auth.RoleClient:
		if draft.ClientID != actor.ID {
			return ErrNotFound
		}

		if n.ProposedBy != ProposerStaff {
			return fmt.Errorf("%w: clients can only respond to staff counter-offers", ErrForbidden)
		}

		return nil
	default:
		return ErrForbidden
	}
}

// ListNegotiations returns every offer on the draft, newest first.
func (s *Service) ListNegotiations(ctx context.Context, actor auth.Actor, draftID uuid.UUID) ([]*Negotiation, error) {
	if _, err := s.GetDraft(ctx, actor, draftID); err != nil {
		return nil, err
	}

	negs, err := s.repo.ListNegotiations(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("list negotiations: %w", err)
	}

	if !actor.IsClient() {
		return negs, nil
	}

	own := negs[:0:0]
	for _, n := range negs {
		if n.ClientID == actor.ID {
			own = append(own, n)
		}
	}

	return own, nil
}

// ActiveNegotiation returns the single pending offer at the head of the draft's chain.
func (s *Service) ActiveNegotiation(ctx context.Context, actor auth.Actor, draftID uuid.UUID) (*Negotiation, error) {
	if _, err := s.GetDraft(ctx, actor, draftID); err != nil {
		return nil, err
	}

	return s.repo.FindActiveNegotiation(ctx, draftID)
}

// Chain walks PreviousID links from the negotiation back to the root offer.
// The result is ordered root first.
func (s *Service) Chain(ctx context.Context, actor auth.Actor, negotiationID uuid.UUID) ([]*Negotiation, error) {
	head, err := s.repo.GetNegotiation(ctx, negotiationID)
	if err != nil {
		return nil, err
	}

	if _, err := s.GetDraft(ctx, actor, head.DraftID); err != nil {
		return nil, err
	}

	chain := []*Negotiation{head}
	seen := map[uuid.UUID]struct{}{head.ID: {}}

	for cur := head; cur.PreviousID != nil; {
		prev, err := s.repo.GetNegotiation(ctx, *cur.PreviousID)
		if err != nil {
			return nil, fmt.Errorf("walk chain from %s: %w", cur.ID, err)
		}

		if _, loop := seen[prev.ID]; loop || prev.DraftID != head.DraftID {
			return nil, fmt.Errorf("%w: %s -> %s", ErrBrokenChain, cur.ID, prev.ID)
		}

		seen[prev.ID] = struct{}{}
		chain = append(chain, prev)
		cur = prev
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}

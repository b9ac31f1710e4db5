package lease

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/leasedesk/internal/lease"
)

type draftResponse struct {
	ID           uuid.UUID         `json:"id"`
	PropertyID   uuid.UUID         `json:"property_id"`
	ClientID     uuid.UUID         `json:"client_id"`
	CurrentTerms lease.Terms       `json:"current_terms"`
	Status       lease.DraftStatus `json:"status"`
	Version      int               `json:"version"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    *time.Time        `json:"updated_at,omitempty"`
}

func toDraftResponse(d *lease.Draft) draftResponse {
	return draftResponse{
		ID:           d.ID,
		PropertyID:   d.PropertyID,
		ClientID:     d.ClientID,
		CurrentTerms: d.CurrentTerms,
		Status:       d.Status,
		Version:      d.Version,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type negotiationResponse struct {
	ID                    uuid.UUID               `json:"id"`
	DraftID               uuid.UUID               `json:"draft_id"`
	ClientID              uuid.UUID               `json:"client_id"`
	ProposedBy            lease.Proposer          `json:"proposed_by"`
	ProposedTerms         lease.Terms             `json:"proposed_terms"`
	Message               string                  `json:"message"`
	Status                lease.NegotiationStatus `json:"status"`
	StaffID               *uuid.UUID              `json:"staff_id,omitempty"`
	StaffResponse         *lease.Terms            `json:"staff_response,omitempty"`
	ResponseMessage       *string                 `json:"response_message,omitempty"`
	RespondedAt           *time.Time              `json:"responded_at,omitempty"`
	PreviousNegotiationID *uuid.UUID              `json:"previous_negotiation_id"`
	CreatedAt             time.Time               `json:"created_at"`
}

func toNegotiationResponse(n *lease.Negotiation) negotiationResponse {
	return negotiationResponse{
		ID:                    n.ID,
		DraftID:               n.DraftID,
		ClientID:              n.ClientID,
		ProposedBy:            n.ProposedBy,
		ProposedTerms:         n.ProposedTerms,
		Message:               n.Message,
		Status:                n.Status,
		StaffID:               n.StaffID,
		StaffResponse:         n.StaffResponse,
		ResponseMessage:       n.ResponseMessage,
		RespondedAt:           n.RespondedAt,
		PreviousNegotiationID: n.PreviousID,
		CreatedAt:             n.CreatedAt,
	}
}

func toNegotiationList(negs []*lease.Negotiation) []negotiationResponse {
	resp := make([]negotiationResponse, len(negs))
	for i, n := range negs {
		resp[i] = toNegotiationResponse(n)
	}

	return resp
}

type leaseResponse struct {
	ID             uuid.UUID   `json:"id"`
	DraftID        uuid.UUID   `json:"draft_id"`
	FinalTerms     lease.Terms `json:"final_terms"`
	SignedByClient bool        `json:"signed_by_client"`
	SignedByAgent  bool        `json:"signed_by_agent"`
	ActiveFrom     string      `json:"active_from"`
	CreatedAt      time.Time   `json:"created_at"`
}

func toLeaseResponse(l *lease.Lease) leaseResponse {
	return leaseResponse{
		ID:             l.ID,
		DraftID:        l.DraftID,
		FinalTerms:     l.FinalTerms,
		SignedByClient: l.SignedByClient,
		SignedByAgent:  l.SignedByAgent,
		ActiveFrom:     l.ActiveFrom.Format(time.DateOnly),
		CreatedAt:      l.CreatedAt,
	}
}

type openResponse struct {
	NegotiationID uuid.UUID         `json:"negotiation_id"`
	DraftStatus   lease.DraftStatus `json:"draft_status"`
}

type respondResponse struct {
	Negotiation negotiationResponse  `json:"negotiation"`
	Counter     *negotiationResponse `json:"counter,omitempty"`
	DraftStatus lease.DraftStatus    `json:"draft_status"`
}

type finalizeResponse struct {
	LeaseID     *uuid.UUID        `json:"lease_id,omitempty"`
	ActiveFrom  string            `json:"active_from,omitempty"`
	DraftStatus lease.DraftStatus `json:"draft_status"`
}

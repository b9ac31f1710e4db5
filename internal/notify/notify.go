package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	NegotiationOpened    Type = "negotiation.opened"
	NegotiationResponded Type = "negotiation.responded"
	DraftCreated         Type = "draft.created"
	DraftReopened        Type = "draft.reopened"
	LeaseFinalized       Type = "lease.finalized"
)

// Event describes a committed state transition of one draft.
type Event struct {
	Type     Type
	DraftID  uuid.UUID
	EntityID uuid.UUID
	ActorID  uuid.UUID
	Payload  map[string]any
	At       time.Time
}

//go:generate mockgen -source=notify.go -destination=sink_mock.go -package=notify
type Sink interface {
	Notify(ctx context.Context, e Event) error
}

// LogSink writes events to a structured logger.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Notify(ctx context.Context, e Event) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "lease event",
		"type", e.Type,
		"draft_id", e.DraftID,
		"entity_id", e.EntityID,
		"actor_id", e.ActorID,
		"payload", e.Payload,
	)

	return nil
}

// Discard drops every event.
type Discard struct{}

func (Discard) Notify(context.Context, Event) error { return nil }

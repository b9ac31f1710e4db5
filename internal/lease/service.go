package lease

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/leasedesk/internal/metrics"
	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
	"github.com/MrJamesThe3rd/leasedesk/internal/property"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=lease
type Repository interface {
	GetDraft(ctx context.Context, id uuid.UUID) (*Draft, error)
	GetNegotiation(ctx context.Context, id uuid.UUID) (*Negotiation, error)
	ListNegotiations(ctx context.Context, draftID uuid.UUID) ([]*Negotiation, error)
	FindActiveNegotiation(ctx context.Context, draftID uuid.UUID) (*Negotiation, error)
	GetLease(ctx context.Context, id uuid.UUID) (*Lease, error)
	GetLeaseByDraft(ctx context.Context, draftID uuid.UUID) (*Lease, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is one transactional session. Every statement of a workflow step runs on it,
// and its Lock* methods hold row locks until Commit or Rollback.
// Locks are taken in the order draft, negotiation, property.
type Tx interface {
	Properties() property.Registry

	CreateDraft(ctx context.Context, d *Draft) error
	LockDraft(ctx context.Context, id uuid.UUID) (*Draft, error)
	SetDraftTerms(ctx context.Context, id uuid.UUID, terms Terms) error
	SetDraftStatus(ctx context.Context, id uuid.UUID, status DraftStatus) error

	LockNegotiation(ctx context.Context, id uuid.UUID) (*Negotiation, error)
	FindActiveNegotiation(ctx context.Context, draftID uuid.UUID) (*Negotiation, error)
	CreateNegotiation(ctx context.Context, n *Negotiation) error
	ResolveNegotiation(ctx context.Context, n *Negotiation) error
	CompleteNegotiations(ctx context.Context, draftID uuid.UUID) (int64, error)

	CreateLease(ctx context.Context, l *Lease) error

	AppendEvent(ctx context.Context, e notify.Event) error

	Commit() error
	Rollback() error
}

type Service struct {
	repo   Repository
	sink   notify.Sink
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

// WithNotifier sets the sink that receives committed transitions.
func WithNotifier(s notify.Sink) Option {
	return func(svc *Service) { svc.sink = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(svc *Service) { svc.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(svc *Service) { svc.now = now }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		sink:   notify.Discard{},
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// publish runs after commit; a failed notification never undoes the transition.
func (s *Service) publish(ctx context.Context, e notify.Event) {
	if err := s.sink.Notify(ctx, e); err != nil {
		s.logger.WarnContext(ctx, "failed to publish lease event", "type", e.Type, "draft_id", e.DraftID, "error", err)
	}
}

func (s *Service) record(op string, err error) {
	metrics.Operation(op, Kind(err))
}

func (s *Service) event(typ notify.Type, draftID, entityID, actorID uuid.UUID, payload map[string]any) notify.Event {
	return notify.Event{
		Type:     typ,
		DraftID:  draftID,
		EntityID: entityID,
		ActorID:  actorID,
		Payload:  payload,
		At:       s.now().UTC(),
	}
}

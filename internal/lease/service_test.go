package lease

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
	"github.com/MrJamesThe3rd/leasedesk/internal/property"
)

type fixture struct {
	repo *MockRepository
	tx   *MockTx
	reg  *property.MockRegistry
	sink *notify.MockSink
	svc  *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		repo: NewMockRepository(ctrl),
		tx:   NewMockTx(ctrl),
		reg:  property.NewMockRegistry(ctrl),
		sink: notify.NewMockSink(ctrl),
	}

	fixed := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	f.svc = NewService(f.repo,
		WithNotifier(f.sink),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return fixed }),
	)

	return f
}

// begin expects one transaction that is always rolled back on exit.
func (f *fixture) begin() {
	f.repo.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Rollback().Return(nil)
	f.tx.EXPECT().Properties().Return(f.reg).AnyTimes()
}

func mustTerms(t *testing.T, raw string) Terms {
	t.Helper()

	terms, err := DecodeTerms(json.RawMessage(raw))
	require.NoError(t, err)

	return terms
}

var (
	staff  = auth.Actor{ID: uuid.New(), Role: auth.RoleAssistant}
	client = auth.Actor{ID: uuid.New(), Role: auth.RoleClient}
)

func TestService_CreateDraft(t *testing.T) {
	propertyID := uuid.New()
	params := CreateDraftParams{PropertyID: propertyID, ClientID: client.ID, Terms: json.RawMessage(validTerms)}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.begin()

		newID := uuid.New()
		f.reg.EXPECT().Status(gomock.Any(), propertyID).Return(property.StatusApproved, nil)
		f.tx.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *Draft) error {
			assert.Equal(t, DraftStatusDraft, d.Status)
			assert.Equal(t, 1, d.Version)
			d.ID = newID
			return nil
		})
		f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e notify.Event) error {
			assert.Equal(t, notify.DraftCreated, e.Type)
			assert.Equal(t, newID, e.DraftID)
			return nil
		})

		d, err := f.svc.CreateDraft(context.Background(), staff, params)
		require.NoError(t, err)
		assert.Equal(t, newID, d.ID)
	})

	t.Run("ClientForbidden", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateDraft(context.Background(), client, params)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("MissingProperty", func(t *testing.T) {
		f := newFixture(t)

		p := params
		p.PropertyID = uuid.Nil

		_, err := f.svc.CreateDraft(context.Background(), staff, p)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("PropertyRented", func(t *testing.T) {
		f := newFixture(t)
		f.begin()
		f.reg.EXPECT().Status(gomock.Any(), propertyID).Return(property.StatusRented, nil)

		_, err := f.svc.CreateDraft(context.Background(), staff, params)
		assert.ErrorIs(t, err, ErrPropertyUnavailable)
	})

	t.Run("PropertyMissing", func(t *testing.T) {
		f := newFixture(t)
		f.begin()
		f.reg.EXPECT().Status(gomock.Any(), propertyID).Return(property.Status(""), property.ErrNotFound)

		_, err := f.svc.CreateDraft(context.Background(), staff, params)
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestService_OpenNegotiation(t *testing.T) {
	draft := &Draft{ID: uuid.New(), PropertyID: uuid.New(), ClientID: client.ID, Status: DraftStatusDraft, Version: 1}
	params := OpenParams{DraftID: draft.ID, ProposedTerms: json.RawMessage(validTerms), Message: "lower rent?"}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(draft, nil)
		f.tx.EXPECT().FindActiveNegotiation(gomock.Any(), draft.ID).Return(nil, ErrNotFound)
		f.tx.EXPECT().CreateNegotiation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *Negotiation) error {
			assert.Equal(t, ProposerClient, n.ProposedBy)
			assert.Equal(t, NegotiationPending, n.Status)
			assert.Nil(t, n.PreviousID)
			n.ID = uuid.New()
			return nil
		})
		f.tx.EXPECT().SetDraftStatus(gomock.Any(), draft.ID, DraftStatusClientReview).Return(nil)
		f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.OpenNegotiation(context.Background(), client, params)
		require.NoError(t, err)
		assert.Equal(t, DraftStatusClientReview, res.DraftStatus)
		assert.Equal(t, "lower rent?", res.Negotiation.Message)
	})

	t.Run("StaffForbidden", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.OpenNegotiation(context.Background(), staff, params)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("InvalidTermsBeforeLocking", func(t *testing.T) {
		f := newFixture(t)

		p := params
		p.ProposedTerms = json.RawMessage(`{"financial":{"rent":"a lot"}}`)

		_, err := f.svc.OpenNegotiation(context.Background(), client, p)
		assert.ErrorIs(t, err, ErrInvalidTerms)
	})

	t.Run("OtherClientsDraft", func(t *testing.T) {
		f := newFixture(t)
		f.begin()

		other := *draft
		other.ClientID = uuid.New()
		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(&other, nil)

		_, err := f.svc.OpenNegotiation(context.Background(), client, params)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Approved", func(t *testing.T) {
		f := newFixture(t)
		f.begin()

		approved := *draft
		approved.Status = DraftStatusApproved
		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(&approved, nil)

		_, err := f.svc.OpenNegotiation(context.Background(), client, params)
		assert.ErrorIs(t, err, ErrNotNegotiable)
	})

	t.Run("AlreadyPending", func(t *testing.T) {
		f := newFixture(t)
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(draft, nil)
		f.tx.EXPECT().FindActiveNegotiation(gomock.Any(), draft.ID).Return(&Negotiation{ID: uuid.New()}, nil)

		_, err := f.svc.OpenNegotiation(context.Background(), client, params)
		assert.ErrorIs(t, err, ErrConflictingNegotiation)
	})

	t.Run("NotifyFailureIsNotAnError", func(t *testing.T) {
		f := newFixture(t)
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(draft, nil)
		f.tx.EXPECT().FindActiveNegotiation(gomock.Any(), draft.ID).Return(nil, ErrNotFound)
		f.tx.EXPECT().CreateNegotiation(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().SetDraftStatus(gomock.Any(), draft.ID, DraftStatusClientReview).Return(nil)
		f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notify.ErrQueueFull)

		_, err := f.svc.OpenNegotiation(context.Background(), client, params)
		assert.NoError(t, err)
	})
}

func TestService_Respond(t *testing.T) {
	draft := &Draft{ID: uuid.New(), PropertyID: uuid.New(), ClientID: client.ID, Status: DraftStatusClientReview}
	offered := mustTerms(t, validTerms)

	pending := func() *Negotiation {
		return &Negotiation{
			ID:            uuid.New(),
			DraftID:       draft.ID,
			ClientID:      client.ID,
			ProposedBy:    ProposerClient,
			ProposedTerms: offered,
			Status:        NegotiationPending,
		}
	}

	t.Run("Accept", func(t *testing.T) {
		f := newFixture(t)
		n := pending()

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.begin()

		gomock.InOrder(
			f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(draft, nil),
			f.tx.EXPECT().LockNegotiation(gomock.Any(), n.ID).Return(n, nil),
			f.tx.EXPECT().ResolveNegotiation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got *Negotiation) error {
				assert.Equal(t, NegotiationAccepted, got.Status)
				assert.Equal(t, staff.ID, *got.StaffID)
				assert.NotNil(t, got.RespondedAt)
				return nil
			}),
			f.tx.EXPECT().SetDraftTerms(gomock.Any(), draft.ID, offered).Return(nil),
			f.tx.EXPECT().SetDraftStatus(gomock.Any(), draft.ID, DraftStatusApproved).Return(nil),
			f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil),
			f.tx.EXPECT().Commit().Return(nil),
		)
		f.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Respond(context.Background(), staff, RespondParams{NegotiationID: n.ID, Action: ActionAccept})
		require.NoError(t, err)
		assert.Equal(t, DraftStatusApproved, res.DraftStatus)
		assert.Nil(t, res.Counter)
	})

	t.Run("Counter", func(t *testing.T) {
		f := newFixture(t)
		n := pending()
		counterRaw := `{"financial":{"rent":1300,"deposit":2600},"dates":{"start":"2025-02-01","end":"2026-01-31"}}`

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(draft, nil)
		f.tx.EXPECT().LockNegotiation(gomock.Any(), n.ID).Return(n, nil)
		resolve := f.tx.EXPECT().ResolveNegotiation(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().CreateNegotiation(gomock.Any(), gomock.Any()).After(resolve).DoAndReturn(func(_ context.Context, next *Negotiation) error {
			assert.Equal(t, ProposerStaff, next.ProposedBy)
			assert.Equal(t, n.ID, *next.PreviousID)
			assert.Equal(t, defaultStaffCounterMessage, next.Message)
			assert.Equal(t, 1300.0, *next.ProposedTerms.Financial.Rent)
			next.ID = uuid.New()
			return nil
		})
		f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Respond(context.Background(), staff, RespondParams{
			NegotiationID: n.ID,
			Action:        ActionCounter,
			CounterTerms:  json.RawMessage(counterRaw),
		})
		require.NoError(t, err)
		assert.Equal(t, NegotiationCountered, res.Negotiation.Status)
		require.NotNil(t, res.Negotiation.StaffResponse)
		assert.Equal(t, DraftStatusClientReview, res.DraftStatus)
		assert.NotNil(t, res.Counter)
	})

	t.Run("ClientCounterLeavesStaffResponseEmpty", func(t *testing.T) {
		f := newFixture(t)
		n := pending()
		n.ProposedBy = ProposerStaff
		counterRaw := `{"financial":{"rent":1100,"deposit":2200},"dates":{"start":"2025-02-01","end":"2026-01-31"}}`

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(draft, nil)
		f.tx.EXPECT().LockNegotiation(gomock.Any(), n.ID).Return(n, nil)
		resolve := f.tx.EXPECT().ResolveNegotiation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got *Negotiation) error {
			assert.Equal(t, NegotiationCountered, got.Status)
			assert.Nil(t, got.StaffResponse)
			assert.Nil(t, got.StaffID)
			return nil
		})
		f.tx.EXPECT().CreateNegotiation(gomock.Any(), gomock.Any()).After(resolve).DoAndReturn(func(_ context.Context, next *Negotiation) error {
			assert.Equal(t, ProposerClient, next.ProposedBy)
			assert.Equal(t, 1100.0, *next.ProposedTerms.Financial.Rent)
			next.ID = uuid.New()
			return nil
		})
		f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Respond(context.Background(), client, RespondParams{
			NegotiationID: n.ID,
			Action:        ActionCounter,
			CounterTerms:  json.RawMessage(counterRaw),
		})
		require.NoError(t, err)
		assert.Nil(t, res.Negotiation.StaffResponse)
		require.NotNil(t, res.Counter)
		assert.Equal(t, 1100.0, *res.Counter.ProposedTerms.Financial.Rent)
	})

	t.Run("CounterWithoutTerms", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Respond(context.Background(), staff, RespondParams{NegotiationID: uuid.New(), Action: ActionCounter})
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("UnknownAction", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Respond(context.Background(), staff, RespondParams{NegotiationID: uuid.New(), Action: "reject"})
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("AlreadyResolved", func(t *testing.T) {
		f := newFixture(t)
		n := pending()
		n.Status = NegotiationAccepted

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.begin()
		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(draft, nil)
		f.tx.EXPECT().LockNegotiation(gomock.Any(), n.ID).Return(n, nil)

		_, err := f.svc.Respond(context.Background(), staff, RespondParams{NegotiationID: n.ID, Action: ActionAccept})
		assert.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("ClientCannotAcceptOwnOffer", func(t *testing.T) {
		f := newFixture(t)
		n := pending()

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.begin()
		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(draft, nil)
		f.tx.EXPECT().LockNegotiation(gomock.Any(), n.ID).Return(n, nil)

		_, err := f.svc.Respond(context.Background(), client, RespondParams{NegotiationID: n.ID, Action: ActionAccept})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("LockTimeout", func(t *testing.T) {
		f := newFixture(t)
		n := pending()

		f.repo.EXPECT().GetNegotiation(gomock.Any(), n.ID).Return(n, nil)
		f.begin()
		f.tx.EXPECT().LockDraft(gomock.Any(), draft.ID).Return(nil, ErrLockTimeout)

		_, err := f.svc.Respond(context.Background(), staff, RespondParams{NegotiationID: n.ID, Action: ActionAccept})
		assert.ErrorIs(t, err, ErrLockTimeout)
	})
}

func TestService_Finalize(t *testing.T) {
	terms := mustTerms(t, validTerms)
	approved := func() *Draft {
		return &Draft{ID: uuid.New(), PropertyID: uuid.New(), ClientID: client.ID, Status: DraftStatusApproved, CurrentTerms: terms}
	}

	t.Run("Accept", func(t *testing.T) {
		f := newFixture(t)
		d := approved()
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), d.ID).Return(d, nil)
		f.reg.EXPECT().LockStatus(gomock.Any(), d.PropertyID).Return(property.StatusApproved, nil)
		f.tx.EXPECT().CreateLease(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *Lease) error {
			assert.False(t, l.SignedByClient)
			assert.True(t, l.SignedByAgent)
			assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), l.ActiveFrom)
			l.ID = uuid.New()
			return nil
		})
		f.tx.EXPECT().SetDraftStatus(gomock.Any(), d.ID, DraftStatusSigned).Return(nil)
		f.reg.EXPECT().SetStatus(gomock.Any(), d.PropertyID, property.StatusRented).Return(nil)
		f.tx.EXPECT().CompleteNegotiations(gomock.Any(), d.ID).Return(int64(3), nil)
		f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Finalize(context.Background(), staff, d.ID, FinalizeAccept)
		require.NoError(t, err)
		assert.Equal(t, DraftStatusSigned, res.DraftStatus)
		assert.NotEqual(t, uuid.Nil, res.Lease.ID)
	})

	t.Run("RejectReopens", func(t *testing.T) {
		f := newFixture(t)
		d := approved()
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), d.ID).Return(d, nil)
		f.tx.EXPECT().SetDraftStatus(gomock.Any(), d.ID, DraftStatusClientReview).Return(nil)
		f.tx.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)
		f.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Finalize(context.Background(), client, d.ID, FinalizeReject)
		require.NoError(t, err)
		assert.Nil(t, res.Lease)
		assert.Equal(t, DraftStatusClientReview, res.DraftStatus)
	})

	t.Run("NotApproved", func(t *testing.T) {
		f := newFixture(t)
		d := approved()
		d.Status = DraftStatusClientReview
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), d.ID).Return(d, nil)

		_, err := f.svc.Finalize(context.Background(), staff, d.ID, FinalizeAccept)
		assert.ErrorIs(t, err, ErrNotFinalizable)
	})

	t.Run("PropertyTakenMeanwhile", func(t *testing.T) {
		f := newFixture(t)
		d := approved()
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), d.ID).Return(d, nil)
		f.reg.EXPECT().LockStatus(gomock.Any(), d.PropertyID).Return(property.StatusRented, nil)

		_, err := f.svc.Finalize(context.Background(), staff, d.ID, FinalizeAccept)
		assert.ErrorIs(t, err, ErrPropertyUnavailable)
	})

	t.Run("PropertyLockTimeout", func(t *testing.T) {
		f := newFixture(t)
		d := approved()
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), d.ID).Return(d, nil)
		f.reg.EXPECT().LockStatus(gomock.Any(), d.PropertyID).
			Return(property.Status(""), fmt.Errorf("reading property status: %w", property.ErrLockTimeout))

		_, err := f.svc.Finalize(context.Background(), staff, d.ID, FinalizeAccept)
		require.ErrorIs(t, err, ErrLockTimeout)
		assert.Equal(t, "lock_timeout", Kind(err))
	})

	t.Run("MarkRentedLockTimeout", func(t *testing.T) {
		f := newFixture(t)
		d := approved()
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), d.ID).Return(d, nil)
		f.reg.EXPECT().LockStatus(gomock.Any(), d.PropertyID).Return(property.StatusApproved, nil)
		f.tx.EXPECT().CreateLease(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().SetDraftStatus(gomock.Any(), d.ID, DraftStatusSigned).Return(nil)
		f.reg.EXPECT().SetStatus(gomock.Any(), d.PropertyID, property.StatusRented).
			Return(fmt.Errorf("updating property status: %w", property.ErrLockTimeout))

		_, err := f.svc.Finalize(context.Background(), staff, d.ID, FinalizeAccept)
		require.ErrorIs(t, err, ErrLockTimeout)
		assert.Equal(t, "lock_timeout", Kind(err))
	})

	t.Run("CorruptTerms", func(t *testing.T) {
		f := newFixture(t)
		d := approved()
		d.CurrentTerms = Terms{}
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), d.ID).Return(d, nil)

		_, err := f.svc.Finalize(context.Background(), staff, d.ID, FinalizeAccept)
		require.ErrorIs(t, err, ErrCorruptTerms)
		assert.Equal(t, "corrupt_terms", Kind(err))
	})

	t.Run("CompleteFailsRollsBack", func(t *testing.T) {
		f := newFixture(t)
		d := approved()
		f.begin()

		f.tx.EXPECT().LockDraft(gomock.Any(), d.ID).Return(d, nil)
		f.reg.EXPECT().LockStatus(gomock.Any(), d.PropertyID).Return(property.StatusApproved, nil)
		f.tx.EXPECT().CreateLease(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().SetDraftStatus(gomock.Any(), d.ID, DraftStatusSigned).Return(nil)
		f.reg.EXPECT().SetStatus(gomock.Any(), d.PropertyID, property.StatusRented).Return(nil)
		f.tx.EXPECT().CompleteNegotiations(gomock.Any(), d.ID).Return(int64(0), errors.New("connection reset"))

		_, err := f.svc.Finalize(context.Background(), staff, d.ID, FinalizeAccept)
		assert.Error(t, err)
	})

	t.Run("InvalidAction", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Finalize(context.Background(), staff, uuid.New(), "sign")
		assert.ErrorIs(t, err, ErrInvalidAction)
	})
}

func TestSignatures(t *testing.T) {
	tests := []struct {
		role              auth.Role
		byClient, byAgent bool
	}{
		{auth.RoleClient, true, false},
		{auth.RoleAssistant, false, true},
		{auth.RoleManager, false, false},
		{auth.RoleSupervisor, false, false},
		{auth.RoleOwner, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			byClient, byAgent := signatures(tt.role)
			assert.Equal(t, tt.byClient, byClient)
			assert.Equal(t, tt.byAgent, byAgent)
		})
	}
}

package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
)

func TestAsync_DeliversAndDrains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := notify.NewMockSink(ctrl)

	var (
		mu  sync.Mutex
		got []notify.Type
	)

	sink.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e notify.Event) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, e.Type)
			return nil
		}).
		Times(2)

	a := notify.NewAsync(sink, 4)
	assert.NoError(t, a.Notify(context.Background(), notify.Event{Type: notify.NegotiationOpened, DraftID: uuid.New()}))
	assert.NoError(t, a.Notify(context.Background(), notify.Event{Type: notify.LeaseFinalized, DraftID: uuid.New()}))
	a.Close()

	assert.Equal(t, []notify.Type{notify.NegotiationOpened, notify.LeaseFinalized}, got)
}

func TestAsync_SinkFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := notify.NewMockSink(ctrl)
	sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	a := notify.NewAsync(sink, 1)
	assert.NoError(t, a.Notify(context.Background(), notify.Event{Type: notify.DraftReopened}))
	a.Close()
}

type blockingSink struct {
	release chan struct{}
}

func (b blockingSink) Notify(context.Context, notify.Event) error {
	<-b.release
	return nil
}

func TestAsync_DropsWhenFull(t *testing.T) {
	sink := blockingSink{release: make(chan struct{})}
	a := notify.NewAsync(sink, 1)

	var full bool

	for range 10 {
		if err := a.Notify(context.Background(), notify.Event{Type: notify.DraftCreated}); errors.Is(err, notify.ErrQueueFull) {
			full = true
			break
		}
	}

	assert.True(t, full)

	close(sink.release)
	a.Close()
}

func TestAsync_NotifyAfterClose(t *testing.T) {
	a := notify.NewAsync(notify.Discard{}, 1)
	a.Close()
	a.Close()

	assert.NotPanics(t, func() {
		err := a.Notify(context.Background(), notify.Event{Type: notify.LeaseFinalized})
		assert.ErrorIs(t, err, notify.ErrClosed)
	})
}

func TestAsync_CloseWhileNotifying(t *testing.T) {
	a := notify.NewAsync(notify.Discard{}, 8)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				err := a.Notify(context.Background(), notify.Event{Type: notify.DraftCreated})
				if err != nil && !errors.Is(err, notify.ErrQueueFull) && !errors.Is(err, notify.ErrClosed) {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}()
	}

	a.Close()
	wg.Wait()
}

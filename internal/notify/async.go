package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrQueueFull = errors.New("notification queue full")
	ErrClosed    = errors.New("notifier closed")
)

// Async hands events to a background worker so delivery never blocks or fails the caller.
// Events are dropped when the buffer is full.
type Async struct {
	next    Sink
	queue   chan Event
	timeout time.Duration
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewAsync(next Sink, buffer int) *Async {
	if buffer < 1 {
		buffer = 1
	}

	a := &Async{
		next:    next,
		queue:   make(chan Event, buffer),
		timeout: 5 * time.Second,
		done:    make(chan struct{}),
	}

	go a.run()

	return a
}

func (a *Async) Notify(_ context.Context, e Event) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return ErrClosed
	}

	select {
	case a.queue <- e:
		return nil
	default:
		return ErrQueueFull
	}
}

func (a *Async) run() {
	defer close(a.done)

	for e := range a.queue {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		if err := a.next.Notify(ctx, e); err != nil {
			slog.Warn("notification delivery failed", "type", e.Type, "draft_id", e.DraftID, "error", err)
		}
		cancel()
	}
}

// Close drains queued events and stops the worker. Later calls to Notify return ErrClosed.
func (a *Async) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	<-a.done
}

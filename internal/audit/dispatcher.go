package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/logger"
)

const (
	queueSize     = 100
	recordTimeout = 5 * time.Second
)

// Event is one entry of a barber's audit trail.
type Event struct {
	BarberID uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes events in the background. A full queue drops the event,
// and so does a closed dispatcher; auditing never fails the request that
// produced it.
type Dispatcher struct {
	rec   Recorder
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(rec Recorder) *Dispatcher {
	d := &Dispatcher{
		rec:   rec,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		if err := d.rec.Record(ctx, ev); err != nil {
			logger.L().Warn().
				Err(err).
				Str("action", ev.Action).
				Uint("barber_id", ev.BarberID).
				Msg("audit write failed")
		}
		cancel()
	}
}

// Dispatch is safe on a nil Dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logger.L().Warn().
			Str("action", ev.Action).
			Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		logger.L().Warn().
			Str("action", ev.Action).
			Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain or ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

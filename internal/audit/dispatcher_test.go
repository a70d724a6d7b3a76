package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type memRecorder struct {
	mu     sync.Mutex
	events []Event
	err    error
	block  chan struct{}
}

func (m *memRecorder) Record(_ context.Context, ev Event) error {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

func (m *memRecorder) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func TestDispatcher_DeliversAndDrains(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec)

	id := uint(7)
	for i := 0; i < 10; i++ {
		d.Dispatch(Event{BarberID: 1, Action: "appointment_confirmed", Entity: "appointment", EntityID: &id})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}

	if rec.count() != 10 {
		t.Fatalf("want 10 events, got %d", rec.count())
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	rec := &memRecorder{block: make(chan struct{})}
	d := NewDispatcher(rec)

	for i := 0; i < queueSize+50; i++ {
		d.Dispatch(Event{BarberID: 1, Action: "x"})
	}
	close(rec.block)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = d.Close(ctx)

	if got := rec.count(); got > queueSize+1 {
		t.Fatalf("queue should have dropped events, recorded %d", got)
	}
}

func TestDispatcher_RecorderErrorIsSwallowed(t *testing.T) {
	rec := &memRecorder{err: errors.New("db down")}
	d := NewDispatcher(rec)
	d.Dispatch(Event{BarberID: 2, Action: "payout_recorded"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
	if rec.count() != 1 {
		t.Fatalf("event not attempted")
	}
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "ignored"})
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}

	d.Dispatch(Event{BarberID: 1, Action: "appointment_created"})

	if err := d.Close(ctx); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if rec.count() != 0 {
		t.Fatalf("late event recorded")
	}
}

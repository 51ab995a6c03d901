package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingTicker struct {
	mu    sync.Mutex
	ticks []time.Time
	seen  chan struct{}
}

func newRecordingTicker() *recordingTicker {
	return &recordingTicker{seen: make(chan struct{}, 16)}
}

func (r *recordingTicker) Tick(_ context.Context, now time.Time) {
	r.mu.Lock()
	r.ticks = append(r.ticks, now)
	r.mu.Unlock()
	select {
	case r.seen <- struct{}{}:
	default:
	}
}

func (r *recordingTicker) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ticks)
}

func TestRunnerTicksOnStart(t *testing.T) {
	ticker := newRecordingTicker()
	loc := time.FixedZone("test", 2*60*60)
	fixed := time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)

	r := NewRunner(ticker, time.Hour, loc)
	r.SetClock(func() time.Time { return fixed })
	r.Start(context.Background())
	defer r.Stop()

	if got := ticker.count(); got != 1 {
		t.Fatalf("ticks after Start = %d, want 1", got)
	}

	ticker.mu.Lock()
	got := ticker.ticks[0]
	ticker.mu.Unlock()
	if got.Location() != loc {
		t.Errorf("tick location = %v, want %v", got.Location(), loc)
	}
	if got.Hour() != 9 {
		t.Errorf("tick hour = %d, want 9 in the configured zone", got.Hour())
	}
}

func TestRunnerTicksEachInterval(t *testing.T) {
	ticker := newRecordingTicker()
	r := NewRunner(ticker, 10*time.Millisecond, time.UTC)
	r.Start(context.Background())

	deadline := time.After(2 * time.Second)
	for ticker.count() < 3 {
		select {
		case <-ticker.seen:
		case <-deadline:
			r.Stop()
			t.Fatalf("only %d ticks before deadline", ticker.count())
		}
	}
	r.Stop()

	after := ticker.count()
	time.Sleep(30 * time.Millisecond)
	if ticker.count() != after {
		t.Error("ticks continued after Stop")
	}
}

func TestRunnerStopOnContextCancel(t *testing.T) {
	ticker := newRecordingTicker()
	r := NewRunner(ticker, time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(newRecordingTicker(), 0, nil)
	if r.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", r.interval, DefaultInterval)
	}
	if r.location != time.Local {
		t.Errorf("location = %v, want Local", r.location)
	}
}

package scheduler

import (
	"context"
	"sync"
	"time"

	"music-scheduler/internal/logging"
	"music-scheduler/internal/metrics"
)

// DefaultInterval is how often schedules are checked.
const DefaultInterval = time.Minute

// Ticker is whatever applies evaluation results; the player controller in production.
type Ticker interface {
	Tick(ctx context.Context, now time.Time)
}

// Runner calls a Ticker once on Start and then every interval until Stop.
type Runner struct {
	ticker   Ticker
	interval time.Duration
	location *time.Location
	now      func() time.Time

	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewRunner creates a runner. A nil location means time.Local.
func NewRunner(ticker Ticker, interval time.Duration, location *time.Location) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if location == nil {
		location = time.Local
	}
	return &Runner{
		ticker:   ticker,
		interval: interval,
		location: location,
		now:      time.Now,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetClock replaces the time source. Intended for tests.
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}

// Start runs the first check synchronously, then keeps checking in the background.
func (r *Runner) Start(ctx context.Context) {
	logging.Info("Schedule checks every %v (%s)", r.interval, r.location)
	r.tick(ctx)
	go r.loop(ctx)
}

// Stop ends the background loop and waits for it to exit.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
	<-r.done
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.tick(ctx)
		case <-r.stopChan:
			logging.Info("Schedule checks stopped")
			return
		case <-ctx.Done():
			return
		}
	}
}

func (r *Runner) tick(ctx context.Context) {
	now := r.now().In(r.location)
	r.ticker.Tick(ctx, now)
	metrics.SchedulerTicksTotal.Inc()
	metrics.SchedulerLastTickTimestamp.Set(float64(now.Unix()))
}

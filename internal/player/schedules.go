package player

import (
	"cmp"
	"context"
	"slices"
	"time"

	"music-scheduler/internal/clock"
	"music-scheduler/internal/logging"
	"music-scheduler/internal/metrics"
	"music-scheduler/internal/scheduler"
)

// Transition sources for metrics.
const (
	sourceAuto   = "auto"
	sourceTest   = "test"
	sourceDelete = "delete"
)

// Schedules returns a copy of all schedules in creation order.
func (c *Controller) Schedules() []scheduler.Schedule {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.schedules)
}

// SongCount returns the playlist size.
func (c *Controller) SongCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playlist.Len()
}

// CreateSchedule validates and adds an idle schedule. It gets a random
// playlist video as its preview, if there is one.
func (c *Controller) CreateSchedule(start, stop string, repeatDaily bool) (scheduler.Schedule, error) {
	s, err := scheduler.New(start, stop, repeatDaily)
	if err != nil {
		return scheduler.Schedule{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s.PreviewVideoID = c.randomVideoID()
	c.schedules = append(c.schedules, s)

	logging.Info("Schedule %s created: %s-%s", s.ID, s.StartTime, s.StopTime)
	return s, nil
}

// EditSchedule changes a schedule's window and repeat flag. Its active flag is kept.
func (c *Controller) EditSchedule(id, start, stop string, repeatDaily bool) (scheduler.Schedule, error) {
	startTime, stopTime, err := scheduler.Window(start, stop)
	if err != nil {
		return scheduler.Schedule{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.scheduleIndex(id)
	if i < 0 {
		return scheduler.Schedule{}, ErrScheduleNotFound
	}

	c.schedules[i].StartTime = startTime
	c.schedules[i].StopTime = stopTime
	c.schedules[i].RepeatDaily = repeatDaily

	logging.Info("Schedule %s changed: %s-%s", id, startTime, stopTime)
	return c.schedules[i], nil
}

// DeleteSchedule removes a schedule. If it was active, playback is stopped
// before the record goes away, under the same lock.
func (c *Controller) DeleteSchedule(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.scheduleIndex(id)
	if i < 0 {
		return ErrScheduleNotFound
	}

	if c.schedules[i].Active {
		c.stopPlayback()
		metrics.ScheduleTransitionsTotal.WithLabelValues(scheduler.Stop.String(), sourceDelete).Inc()
	}
	c.schedules = slices.Delete(c.schedules, i, i+1)

	logging.Info("Schedule %s deleted", id)
	return nil
}

// TestSchedule starts playback for one schedule right away and marks every
// other schedule idle.
func (c *Controller) TestSchedule(id string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.scheduleIndex(id)
	if i < 0 {
		return c.snapshot(), ErrScheduleNotFound
	}
	if c.playlist.Len() == 0 {
		return c.snapshot(), ErrEmptyPlaylist
	}

	c.haltAll()
	c.resetProgress()
	for j := range c.schedules {
		c.schedules[j].Active = j == i
	}
	c.startFresh()

	metrics.ScheduleTransitionsTotal.WithLabelValues(scheduler.Start.String(), sourceTest).Inc()
	logging.Info("Schedule %s test started", id)
	return c.snapshot(), nil
}

// StopTest marks a schedule idle and stops playback.
func (c *Controller) StopTest(id string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.scheduleIndex(id)
	if i < 0 {
		return c.snapshot(), ErrScheduleNotFound
	}

	c.schedules[i].Active = false
	c.stopPlayback()

	metrics.ScheduleTransitionsTotal.WithLabelValues(scheduler.Stop.String(), sourceTest).Inc()
	logging.Info("Schedule %s test stopped", id)
	return c.snapshot(), nil
}

// Tick evaluates every schedule at now and applies the resulting transitions.
// Stops are applied before starts, so a window opening in the same minute
// another closes keeps playing. Overlapping starts each apply; the last one
// is what plays.
func (c *Controller) Tick(_ context.Context, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := clock.FormatClock(now)
	transitions := scheduler.Evaluate(current, c.schedules, c.playlist.Len() > 0)
	slices.SortStableFunc(transitions, func(a, b scheduler.Transition) int {
		return cmp.Compare(applyRank(a.Kind), applyRank(b.Kind))
	})
	for _, t := range transitions {
		i := c.scheduleIndex(t.ScheduleID)
		if i < 0 {
			continue
		}

		switch t.Kind {
		case scheduler.Start:
			c.schedules[i].Active = true
			c.haltAll()
			c.resetProgress()
			c.startFresh()
		case scheduler.Stop:
			c.schedules[i].Active = false
			c.stopPlayback()
		}

		metrics.ScheduleTransitionsTotal.WithLabelValues(t.Kind.String(), sourceAuto).Inc()
		logging.Info("Schedule %s %s at %s", t.ScheduleID, t.Kind, current)
	}
}

func applyRank(k scheduler.TransitionKind) int {
	if k == scheduler.Stop {
		return 0
	}
	return 1
}

// startFresh regenerates the shuffle, selects its first song and plays it.
// Callers halt both backends first.
func (c *Controller) startFresh() {
	c.playlist.Reshuffle()
	c.playlist.ShuffleEnabled = true
	c.state.CurrentIndex = 0
	c.state.IsPlaying = true
	c.playCurrent()
}

// stopPlayback clears the play flag and halts both backends. The selection stays.
func (c *Controller) stopPlayback() {
	c.state.IsPlaying = false
	c.haltAll()
}

func (c *Controller) scheduleIndex(id string) int {
	return slices.IndexFunc(c.schedules, func(s scheduler.Schedule) bool { return s.ID == id })
}

func (c *Controller) randomVideoID() string {
	ids := c.playlist.VideoIDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[c.intN(len(ids))]
}

// fillPreviews gives schedules without a preview a random playlist video.
func (c *Controller) fillPreviews() {
	for i := range c.schedules {
		if c.schedules[i].PreviewVideoID == "" {
			c.schedules[i].PreviewVideoID = c.randomVideoID()
		}
	}
}

package scheduler

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"music-scheduler/internal/clock"
)

// ErrInvalidWindow is reported to users when a window does not start before it stops.
var ErrInvalidWindow = errors.New("Stop time must be after start time") //nolint:staticcheck // shown verbatim to users

// Display statuses.
const (
	StatusLive      = "LIVE"
	StatusScheduled = "SCHEDULED"
	StatusInactive  = "INACTIVE"
)

// Schedule is a daily [StartTime, StopTime) playback window.
type Schedule struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"`
	StopTime    string `json:"stopTime"`
	RepeatDaily bool   `json:"repeatDaily"`

	// Active is true while this schedule believes it is driving playback.
	Active bool `json:"isActive"`

	// PreviewVideoID picks the thumbnail shown for the schedule.
	PreviewVideoID string `json:"previewVideoId,omitempty"`
}

// Window parses and validates a start/stop pair, returning canonical "HH:MM" values.
func Window(start, stop string) (string, string, error) {
	s, err := clock.Parse(start)
	if err != nil {
		return "", "", fmt.Errorf("start time: %w", err)
	}
	e, err := clock.Parse(stop)
	if err != nil {
		return "", "", fmt.Errorf("stop time: %w", err)
	}
	if !clock.IsValidWindow(s, e) {
		return "", "", ErrInvalidWindow
	}
	return s, e, nil
}

// New creates an idle schedule after validating its window.
func New(start, stop string, repeatDaily bool) (Schedule, error) {
	s, e, err := Window(start, stop)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{
		ID:          uuid.NewString(),
		StartTime:   s,
		StopTime:    e,
		RepeatDaily: repeatDaily,
	}, nil
}

// Status returns the display status at the given "HH:MM" time.
func (s Schedule) Status(now string) string {
	if s.Active {
		return StatusLive
	}
	if now < s.StartTime {
		return StatusScheduled
	}
	return StatusInactive
}

// Summary describes what the schedule plays.
func Summary(songCount int) string {
	if songCount == 1 {
		return "plays all 1 song"
	}
	return fmt.Sprintf("plays all %d songs", songCount)
}

package scheduler

import "music-scheduler/internal/clock"

// TransitionKind is the direction of a schedule state change.
type TransitionKind int

const (
	// Start moves an idle schedule to active and begins playback.
	Start TransitionKind = iota + 1
	// Stop moves an active schedule to idle and halts playback.
	Stop
)

func (k TransitionKind) String() string {
	switch k {
	case Start:
		return "start"
	case Stop:
		return "stop"
	default:
		return "none"
	}
}

// Transition is a state change for one schedule.
type Transition struct {
	ScheduleID string
	Kind       TransitionKind
}

// Evaluate returns the transitions due at now, in schedule order.
//
// A schedule starts when now is inside its window, it is idle and the playlist
// has songs. It stops when now is outside its window and it is active.
func Evaluate(now string, schedules []Schedule, playlistNonEmpty bool) []Transition {
	var transitions []Transition
	for _, s := range schedules {
		inWindow := clock.IsWithinWindow(now, s.StartTime, s.StopTime)
		switch {
		case inWindow && !s.Active && playlistNonEmpty:
			transitions = append(transitions, Transition{ScheduleID: s.ID, Kind: Start})
		case !inWindow && s.Active:
			transitions = append(transitions, Transition{ScheduleID: s.ID, Kind: Stop})
		}
	}
	return transitions
}

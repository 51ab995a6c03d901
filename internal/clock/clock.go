// Package clock holds the wall-clock helpers used by schedules.
//
// Times are "HH:MM" strings, always zero padded, so plain string comparison
// orders them the same way as minutes since midnight.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTime is returned by Parse for anything that is not a 24-hour H:MM or HH:MM time.
var ErrMalformedTime = errors.New("time must be in HH:MM format")

// FormatClock renders t as zero-padded 24-hour "HH:MM".
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// IsWithinWindow reports whether current lies in the half-open window [start, stop).
func IsWithinWindow(current, start, stop string) bool {
	return current >= start && current < stop
}

// IsValidWindow reports whether start is strictly before stop. Windows never
// wrap past midnight.
func IsValidWindow(start, stop string) bool {
	return start < stop
}

// Parse validates s and returns its canonical zero-padded form.
func Parse(s string) (string, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 || strings.HasPrefix(hh, "+") {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 || strings.HasPrefix(mm, "+") {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

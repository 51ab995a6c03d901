// Package scheduler decides when daily playback windows start and stop.
//
// The core is Evaluate, a pure function of the current "HH:MM" time, the
// schedules and whether the playlist has any songs. It returns the start and
// stop transitions that should happen now; it does not touch playback. The
// player controller applies the transitions, and Runner is the thin ticker
// that calls the controller once at startup and then once per interval.
//
// Overlapping windows are not arbitrated: every schedule whose window opens
// gets its own start transition, and because there is a single playback state
// the last one applied is the one that is heard.
package scheduler

// Package player owns the single playback state.
//
// A Controller holds the playlist, the schedules and the PlaybackState behind
// one mutex, so HTTP requests, the schedule ticker and player events reported
// over the websocket are applied one at a time. Media backends only mirror
// that state: the controller tells them what to load, play, pause and how
// loud, and never reads state back from them.
//
// At most one backend is told to play at any moment. Every transition into
// playback first pauses both backends, resets the selection, and only then
// asserts IsPlaying and issues play to the backend matching the current
// song's kind.
package player

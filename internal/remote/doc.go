// Package remote drives browser players over a websocket.
//
// The daemon never decodes audio itself. A browser page hosting the video
// embed and an audio element connects to /ws/player and does what it is told.
// Each Backend records the desired state of one of those players and
// broadcasts every change through the Hub. When no page is attached, commands
// return ErrNotReady but the state is still recorded, and it is replayed to
// the next page that attaches or reports that it is ready.
//
// Pages report back with small JSON events (track ended, progress, ready)
// which the Hub forwards to an EventSink, normally the player controller.
package remote

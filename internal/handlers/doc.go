// Package handlers provides the HTTP API of the music scheduler.
//
// It includes handlers for:
//   - Playlist management: single and bulk YouTube links, audio uploads, removal
//   - Streaming uploaded audio to browser players
//   - Playback control: play/pause, next, previous, jump, shuffle, volume
//   - Schedule management, including test runs
//   - The player websocket
//   - Health checks and build information
//
// Validation failures answer 400 with {"error": "..."} carrying the message
// shown to users; unknown ids answer 404.
package handlers

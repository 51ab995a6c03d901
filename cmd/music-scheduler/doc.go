// Package main provides the entry point for the music scheduler daemon.
//
// The daemon owns one playlist, a set of daily playback windows and a single
// playback state. Browser players attach over a websocket and mirror what
// the daemon tells them to play: YouTube videos in an embedded player,
// uploaded audio through the /api/audio endpoint.
//
// # Application Lifecycle
//
//  1. Configuration Loading: Reads .env and the environment, prepares DATA_DIR
//  2. Database Initialization: Opens the SQLite database in WAL mode
//  3. Component Initialization:
//     - Upload store for local audio
//     - Player hub with one video and one audio backend
//     - Player controller, restoring the saved playlist
//     - Schedule runner, checking windows every SCHEDULE_CHECK_INTERVAL
//     - Metrics collector
//  4. HTTP Server Setup: Routes, logging and metrics middleware
//  5. Graceful Shutdown: Handles SIGINT/SIGTERM and stops everything in order
//
// # HTTP Servers
//
//  1. Main Server (default port 8080): the JSON API, audio streaming, the
//     player websocket at /ws/player and health probes.
//  2. Metrics Server (default port 9090, optional): /metrics and /health.
//
// # Graceful Shutdown
//
//  1. Stop accepting new HTTP requests (30s timeout)
//  2. Shutdown metrics server (if running)
//  3. Stop the schedule runner
//  4. Stop metrics collector
//  5. Disconnect players
//  6. Close the database
//
// # Build Requirements
//
// CGO is required for SQLite:
//
//	go build -o music-scheduler ./cmd/music-scheduler
//
// # Related Packages
//
//   - [music-scheduler/internal/player]: Playlist, schedule and playback owner
//   - [music-scheduler/internal/scheduler]: Schedule model, evaluator and runner
//   - [music-scheduler/internal/remote]: Player websocket and media backends
//   - [music-scheduler/internal/handlers]: HTTP request handlers
//   - [music-scheduler/internal/startup]: Configuration and initialization
package main

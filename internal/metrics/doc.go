// Package metrics provides Prometheus instrumentation for the music scheduler.
//
// All metrics are prefixed with "music_scheduler_".
//
// # Metric Categories
//
// ## HTTP Metrics
//   - HTTPRequestsTotal, HTTPRequestDuration, HTTPRequestsInFlight
//
// ## Database Metrics
//   - DBQueryTotal, DBQueryDuration, DBConnectionsOpen
//
// ## Scheduler Metrics
//   - SchedulerTicksTotal: evaluator runs (timer, startup)
//   - SchedulerLastTickTimestamp: unix time of the last evaluator run
//   - ScheduleTransitionsTotal: start/stop transitions by source (auto, test, delete)
//   - SchedulesTotal, SchedulesActive
//
// ## Playback Metrics
//   - PlaybackPlaying, PlaybackVolume, PlaylistSongs (by kind)
//   - BackendCommandsTotal: commands sent to each media backend by outcome
//   - PlayerClientsConnected: browser players attached over websocket
//
// ## Intake Metrics
//   - TitleLookupsTotal: oEmbed lookups by result
//   - UploadsTotal: uploaded files by result
//
// ## Filesystem Metrics
//   - FilesystemRetryAttempts, FilesystemRetryFailures, FilesystemStaleErrors
//
// Gauges that mirror controller state are refreshed by Collector, which polls
// a StatsProvider on an interval. Call InitializeMetrics once at startup so
// every label combination is exported from the first scrape.
package metrics

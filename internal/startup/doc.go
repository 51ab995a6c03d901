// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// [LoadConfig] reads an optional .env file from the working directory and
// then the process environment. Variables already present in the
// environment win over .env entries.
//
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable the metrics server (default: true)
//   - DATA_DIR: Directory for the database and uploaded audio (default: /data)
//   - SCHEDULE_CHECK_INTERVAL: How often schedules are evaluated, as a Go duration (default: 1m)
//   - TIMEZONE: IANA zone used for schedule times (default: Local)
//   - OEMBED_ENDPOINT: Title lookup service (default: https://noembed.com/embed)
//   - DEFAULT_VOLUME: Starting volume, 1 to 100 (default: 70)
//   - TITLE_FETCH_WORKERS: Concurrent title lookups during bulk add (default: derived from CPU count)
//   - MAX_UPLOAD_MB: Multipart upload ceiling in megabytes (default: 200)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// The database lives at DATA_DIR/scheduler.db and uploads under
// DATA_DIR/uploads. Both directories are created and checked for write
// access before the config is returned.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo].
//
// # Lifecycle Logging
//
//   - [LogDatabaseInit]: Database initialization timing
//   - [LogPlayerInit]: Restored playlist size and volume
//   - [LogSchedulerInit]: Check interval and time zone
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated], [LogShutdownStep], [LogShutdownComplete]: Graceful shutdown
//
// # Example Usage
//
//	config, err := startup.LoadConfig()
//	if err != nil {
//	    startup.LogFatal("Configuration error: %v", err)
//	}
//
//	startup.LogDatabaseInit(time.Since(dbStart))
//	startup.LogSchedulerInit(config.ScheduleCheckInterval, config.Location)
//
//	startup.LogServerStarted(startup.ServerConfig{
//	    Port:            config.Port,
//	    MetricsPort:     config.MetricsPort,
//	    MetricsEnabled:  config.MetricsEnabled,
//	    StartupDuration: time.Since(startTime),
//	})
package startup

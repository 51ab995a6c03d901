package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_scheduler_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "music_scheduler_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_scheduler_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Database metrics
var (
	DBQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_scheduler_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "music_scheduler_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	DBConnectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_scheduler_db_connections_open",
			Help: "Number of open database connections",
		},
	)
)

// Scheduler metrics
var (
	SchedulerTicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "music_scheduler_scheduler_ticks_total",
			Help: "Total number of schedule evaluations",
		},
	)

	SchedulerLastTickTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_scheduler_scheduler_last_tick_timestamp",
			Help: "Unix timestamp of the last schedule evaluation",
		},
	)

	ScheduleTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_scheduler_schedule_transitions_total",
			Help: "Schedule state transitions by direction and source",
		},
		[]string{"direction", "source"}, // start|stop, auto|test|delete
	)

	SchedulesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_scheduler_schedules",
			Help: "Number of configured schedules",
		},
	)

	SchedulesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_scheduler_schedules_active",
			Help: "Number of schedules currently marked active",
		},
	)
)

// Playback metrics
var (
	PlaybackPlaying = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_scheduler_playback_playing",
			Help: "Whether playback is asserted (1 = playing, 0 = paused or stopped)",
		},
	)

	PlaybackVolume = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_scheduler_playback_volume",
			Help: "Current playback volume (0-100)",
		},
	)

	PlaylistSongs = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "music_scheduler_playlist_songs",
			Help: "Number of songs in the playlist by kind",
		},
		[]string{"kind"},
	)

	BackendCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_scheduler_backend_commands_total",
			Help: "Commands sent to media backends by outcome",
		},
		[]string{"backend", "action", "status"},
	)

	PlayerClientsConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_scheduler_player_clients_connected",
			Help: "Number of browser players attached over websocket",
		},
	)
)

// Intake metrics
var (
	TitleLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_scheduler_title_lookups_total",
			Help: "oEmbed title lookups by result",
		},
		[]string{"result"}, // success|not_found|bad_status|error
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_scheduler_uploads_total",
			Help: "Uploaded files by result",
		},
		[]string{"result"}, // accepted|rejected|error
	)
)

// Filesystem metrics
var (
	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_scheduler_filesystem_retry_attempts_total",
			Help: "Filesystem operations retried after a stale file handle",
		},
		[]string{"operation"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_scheduler_filesystem_retry_failures_total",
			Help: "Filesystem operations that failed after all retries",
		},
		[]string{"operation"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_scheduler_filesystem_stale_errors_total",
			Help: "Stale file handle errors encountered",
		},
		[]string{"operation"},
	)
)

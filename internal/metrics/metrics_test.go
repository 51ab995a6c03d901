package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"HTTPRequestsTotal", HTTPRequestsTotal},
		{"HTTPRequestDuration", HTTPRequestDuration},
		{"HTTPRequestsInFlight", HTTPRequestsInFlight},
		{"DBQueryTotal", DBQueryTotal},
		{"DBQueryDuration", DBQueryDuration},
		{"DBConnectionsOpen", DBConnectionsOpen},
		{"SchedulerTicksTotal", SchedulerTicksTotal},
		{"SchedulerLastTickTimestamp", SchedulerLastTickTimestamp},
		{"ScheduleTransitionsTotal", ScheduleTransitionsTotal},
		{"SchedulesTotal", SchedulesTotal},
		{"SchedulesActive", SchedulesActive},
		{"PlaybackPlaying", PlaybackPlaying},
		{"PlaybackVolume", PlaybackVolume},
		{"PlaylistSongs", PlaylistSongs},
		{"BackendCommandsTotal", BackendCommandsTotal},
		{"PlayerClientsConnected", PlayerClientsConnected},
		{"TitleLookupsTotal", TitleLookupsTotal},
		{"UploadsTotal", UploadsTotal},
		{"FilesystemRetryAttempts", FilesystemRetryAttempts},
		{"FilesystemRetryFailures", FilesystemRetryFailures},
		{"FilesystemStaleErrors", FilesystemStaleErrors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestInitializeMetricsPopulatesLabels(t *testing.T) {
	InitializeMetrics()

	if n := testutil.CollectAndCount(ScheduleTransitionsTotal); n < 6 {
		t.Errorf("expected at least 6 transition series, got %d", n)
	}
	if n := testutil.CollectAndCount(PlaylistSongs); n < 2 {
		t.Errorf("expected at least 2 playlist series, got %d", n)
	}
	if n := testutil.CollectAndCount(BackendCommandsTotal); n < 16 {
		t.Errorf("expected at least 16 backend command series, got %d", n)
	}
}

func TestFilesystemObserver(t *testing.T) {
	obs := NewFilesystemObserver()

	before := testutil.ToFloat64(FilesystemRetryAttempts.WithLabelValues("open"))
	obs.ObserveRetryAttempt("open")
	obs.ObserveStaleError("open")
	obs.ObserveRetryFailure("open")

	if got := testutil.ToFloat64(FilesystemRetryAttempts.WithLabelValues("open")); got != before+1 {
		t.Errorf("retry attempts = %v, want %v", got, before+1)
	}
}

package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, op := range []string{"load_playlist", "save_playlist", "get_metadata", "set_metadata", "delete_metadata", "initialize_schema"} {
		DBQueryTotal.WithLabelValues(op, "success")
		DBQueryTotal.WithLabelValues(op, "error")
		DBQueryDuration.WithLabelValues(op)
	}

	for _, direction := range []string{"start", "stop"} {
		for _, source := range []string{"auto", "test", "delete"} {
			ScheduleTransitionsTotal.WithLabelValues(direction, source)
		}
	}

	for _, kind := range []string{"external-video", "local-audio"} {
		PlaylistSongs.WithLabelValues(kind)
	}

	for _, backend := range []string{"video", "audio"} {
		for _, action := range []string{"load", "play", "pause", "volume"} {
			BackendCommandsTotal.WithLabelValues(backend, action, "success")
			BackendCommandsTotal.WithLabelValues(backend, action, "not_ready")
		}
	}

	for _, result := range []string{"success", "not_found", "bad_status", "error"} {
		TitleLookupsTotal.WithLabelValues(result)
	}

	for _, result := range []string{"accepted", "rejected", "error"} {
		UploadsTotal.WithLabelValues(result)
	}

	for _, op := range []string{"open", "remove"} {
		FilesystemRetryAttempts.WithLabelValues(op)
		FilesystemRetryFailures.WithLabelValues(op)
		FilesystemStaleErrors.WithLabelValues(op)
	}
}

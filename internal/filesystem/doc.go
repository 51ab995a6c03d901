/*
Package filesystem wraps the few file operations the uploads store needs with
retry logic for NFS stale file handle errors.

The uploads directory is commonly a network mount in home setups. An ESTALE
error (errno 116 on Linux) is retried with exponential backoff; every other
error is returned immediately.

# Usage

	f, err := filesystem.OpenWithRetry(path, filesystem.DefaultRetryConfig())
	err = filesystem.RemoveWithRetry(path, filesystem.DefaultRetryConfig())

# Metrics

Retry attempts, final failures and stale handle occurrences are reported
through an Observer. The metrics package provides the Prometheus
implementation; call SetObserver once at startup. With no observer set,
nothing is recorded.
*/
package filesystem

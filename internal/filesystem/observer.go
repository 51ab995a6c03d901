package filesystem

// Observer records retry metrics. Implementations are provided by the
// metrics package to avoid an import cycle.
type Observer interface {
	ObserveRetryAttempt(op string)
	ObserveRetryFailure(op string)
	ObserveStaleError(op string)
}

var defaultObserver Observer

// SetObserver sets the package-level metrics observer.
func SetObserver(o Observer) {
	defaultObserver = o
}

type nopObserver struct{}

func (nopObserver) ObserveRetryAttempt(string) {}
func (nopObserver) ObserveRetryFailure(string) {}
func (nopObserver) ObserveStaleError(string)   {}

func observe() Observer {
	if defaultObserver == nil {
		return nopObserver{}
	}
	return defaultObserver
}

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"music-scheduler/internal/middleware"
	"music-scheduler/internal/remote"
)

// RouterConfig controls the middleware installed by NewRouter.
type RouterConfig struct {
	LogHealthChecks bool
}

// PlayerSocket attaches a browser player over a websocket.
func (h *Handlers) PlayerSocket(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r)
}

// NewRouter registers every route on a new router.
func NewRouter(h *Handlers, cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = cfg.LogHealthChecks
	r.Use(middleware.Logger(loggingConfig))
	r.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))

	// Health and info
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/livez", h.LivenessCheck).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods(http.MethodGet)
	r.HandleFunc("/version", h.GetVersion).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Songs
	api.HandleFunc("/songs", h.ListSongs).Methods(http.MethodGet)
	api.HandleFunc("/songs", h.AddSong).Methods(http.MethodPost)
	api.HandleFunc("/songs/bulk", h.AddSongsBulk).Methods(http.MethodPost)
	api.HandleFunc("/songs/upload", h.UploadSongs).Methods(http.MethodPost)
	api.HandleFunc("/songs/{id}", h.DeleteSong).Methods(http.MethodDelete)
	r.HandleFunc(remote.AudioPathPrefix+"{handle}", h.StreamAudio).Methods(http.MethodGet, http.MethodHead)

	// Playback
	api.HandleFunc("/player", h.GetPlayer).Methods(http.MethodGet)
	api.HandleFunc("/player/toggle", h.TogglePlay).Methods(http.MethodPost)
	api.HandleFunc("/player/next", h.Next).Methods(http.MethodPost)
	api.HandleFunc("/player/previous", h.Previous).Methods(http.MethodPost)
	api.HandleFunc("/player/shuffle", h.ToggleShuffle).Methods(http.MethodPost)
	api.HandleFunc("/player/play/{index:[0-9]+}", h.PlayIndex).Methods(http.MethodPost)
	api.HandleFunc("/player/volume", h.SetVolume).Methods(http.MethodPut)

	// Schedules
	api.HandleFunc("/schedules", h.ListSchedules).Methods(http.MethodGet)
	api.HandleFunc("/schedules", h.CreateSchedule).Methods(http.MethodPost)
	api.HandleFunc("/schedules/{id}", h.UpdateSchedule).Methods(http.MethodPut)
	api.HandleFunc("/schedules/{id}", h.DeleteSchedule).Methods(http.MethodDelete)
	api.HandleFunc("/schedules/{id}/test", h.TestSchedule).Methods(http.MethodPost)
	api.HandleFunc("/schedules/{id}/stop", h.StopTest).Methods(http.MethodPost)

	// Players
	r.HandleFunc("/ws/player", h.PlayerSocket).Methods(http.MethodGet)

	return r
}

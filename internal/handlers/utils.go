package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"music-scheduler/internal/clock"
	"music-scheduler/internal/logging"
	"music-scheduler/internal/player"
	"music-scheduler/internal/playlist"
	"music-scheduler/internal/scheduler"
	"music-scheduler/internal/uploads"
	"music-scheduler/internal/youtube"
)

// maxJSONBody bounds JSON request bodies. Bulk link lists are the largest.
const maxJSONBody = 1 << 20

var errBadBody = errors.New("invalid request body")

// writeJSON encodes v as JSON and writes it to the response writer.
// Encoding errors are logged since the status line is already gone.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONStatus writes v with the given status code.
func writeJSONStatus(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, v)
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSONStatus(w, statusCode, map[string]string{"error": message})
}

// writeError maps a domain error to its status code. Unexpected errors are
// logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error("%s %s: %v", r.Method, r.URL.Path, err)
		writeJSONError(w, "Internal server error", status)
		return
	}
	writeJSONError(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, player.ErrSongNotFound),
		errors.Is(err, player.ErrScheduleNotFound),
		errors.Is(err, uploads.ErrInvalidHandle):
		return http.StatusNotFound
	case errors.Is(err, youtube.ErrInvalidURL),
		errors.Is(err, player.ErrNoValidURLs),
		errors.Is(err, player.ErrEmptyPlaylist),
		errors.Is(err, player.ErrIndexOutOfRange),
		errors.Is(err, scheduler.ErrInvalidWindow),
		errors.Is(err, clock.ErrMalformedTime),
		errors.Is(err, playlist.ErrInvalidSong),
		errors.Is(err, uploads.ErrNoAudioFiles),
		errors.Is(err, errBadBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a single JSON object into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty", errBadBody)
		}
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	return nil
}

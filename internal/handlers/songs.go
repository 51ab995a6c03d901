package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"music-scheduler/internal/logging"
	"music-scheduler/internal/playlist"
	"music-scheduler/internal/uploads"
)

type addSongRequest struct {
	URL string `json:"url"`
}

type addBulkRequest struct {
	URLs string `json:"urls"`
}

// SongsResponse lists songs added by one request.
type SongsResponse struct {
	Added int             `json:"added"`
	Songs []playlist.Song `json:"songs"`
}

// ListSongs returns the canonical playlist and the active view
func (h *Handlers) ListSongs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, h.player.Library())
}

// AddSong adds one YouTube link
func (h *Handlers) AddSong(w http.ResponseWriter, r *http.Request) {
	var req addSongRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	song, err := h.player.AddURL(r.Context(), req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, song)
}

// AddSongsBulk adds every YouTube link in a newline-separated list
func (h *Handlers) AddSongsBulk(w http.ResponseWriter, r *http.Request) {
	var req addBulkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	songs, err := h.player.AddBulk(r.Context(), req.URLs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, SongsResponse{Added: len(songs), Songs: songs})
}

// UploadSongs stores the audio files of a multipart "files" field and adds them
func (h *Handlers) UploadSongs(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONError(w, "Upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		writeJSONError(w, "Invalid upload", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logging.Debug("failed to remove multipart temp files: %v", err)
		}
	}()

	songs, err := h.uploads.Save(r.MultipartForm.File["files"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.player.AddAudio(r.Context(), songs); err != nil {
		for _, s := range songs {
			if relErr := h.uploads.Release(s.AudioHandle); relErr != nil {
				logging.Warn("Failed to release %s: %v", s.AudioHandle, relErr)
			}
		}
		writeError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, SongsResponse{Added: len(songs), Songs: songs})
}

// DeleteSong removes a song from the playlist
func (h *Handlers) DeleteSong(w http.ResponseWriter, r *http.Request) {
	if err := h.player.RemoveSong(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StreamAudio serves an uploaded audio file, with range support
func (h *Handlers) StreamAudio(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]
	if !uploads.ValidHandle(handle) {
		http.Error(w, "Audio not found", http.StatusNotFound)
		return
	}

	f, err := h.uploads.Open(handle)
	if err != nil {
		http.Error(w, "Audio not found", http.StatusNotFound)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Debug("failed to close %s: %v", handle, err)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "Failed to read audio", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=3600")
	http.ServeContent(w, r, handle, info.ModTime(), f)
}

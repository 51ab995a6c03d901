package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"music-scheduler/internal/player"
)

type volumeRequest struct {
	Volume *int `json:"volume"`
}

func (h *Handlers) writeSnapshot(w http.ResponseWriter, r *http.Request, snap player.Snapshot, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, snap)
}

// GetPlayer returns the playback state and current song
func (h *Handlers) GetPlayer(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, h.player.State())
}

// TogglePlay pauses or resumes playback
func (h *Handlers) TogglePlay(w http.ResponseWriter, r *http.Request) {
	snap, err := h.player.TogglePlay()
	h.writeSnapshot(w, r, snap, err)
}

// Next skips forward, wrapping at the end
func (h *Handlers) Next(w http.ResponseWriter, r *http.Request) {
	snap, err := h.player.Next()
	h.writeSnapshot(w, r, snap, err)
}

// Previous skips back, wrapping at the start
func (h *Handlers) Previous(w http.ResponseWriter, r *http.Request) {
	snap, err := h.player.Previous()
	h.writeSnapshot(w, r, snap, err)
}

// PlayIndex jumps to a position in the active view
func (h *Handlers) PlayIndex(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, r, player.ErrIndexOutOfRange)
		return
	}
	snap, err := h.player.PlayIndex(index)
	h.writeSnapshot(w, r, snap, err)
}

// ToggleShuffle switches between canonical and shuffled order
func (h *Handlers) ToggleShuffle(w http.ResponseWriter, r *http.Request) {
	h.writeSnapshot(w, r, h.player.ToggleShuffle(), nil)
}

// SetVolume changes the output volume; values outside 0-100 are clamped
func (h *Handlers) SetVolume(w http.ResponseWriter, r *http.Request) {
	var req volumeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Volume == nil {
		writeJSONError(w, "volume is required", http.StatusBadRequest)
		return
	}
	h.writeSnapshot(w, r, h.player.SetVolume(*req.Volume), nil)
}

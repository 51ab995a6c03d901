package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"music-scheduler/internal/clock"
	"music-scheduler/internal/scheduler"
	"music-scheduler/internal/youtube"
)

type scheduleRequest struct {
	StartTime   string `json:"startTime"`
	StopTime    string `json:"stopTime"`
	RepeatDaily bool   `json:"repeatDaily"`
}

// ScheduleView is a schedule as listed to users.
type ScheduleView struct {
	scheduler.Schedule
	Status    string `json:"status"`
	Summary   string `json:"summary"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

func (h *Handlers) clockNow() string {
	return clock.FormatClock(h.now().In(h.location))
}

func (h *Handlers) view(s scheduler.Schedule, now string, songs int) ScheduleView {
	v := ScheduleView{
		Schedule: s,
		Status:   s.Status(now),
		Summary:  scheduler.Summary(songs),
	}
	if s.PreviewVideoID != "" {
		v.Thumbnail = youtube.ThumbnailURL(s.PreviewVideoID)
	}
	return v
}

// ListSchedules returns every schedule with its display status
func (h *Handlers) ListSchedules(w http.ResponseWriter, _ *http.Request) {
	now := h.clockNow()
	songs := h.player.SongCount()

	schedules := h.player.Schedules()
	views := make([]ScheduleView, 0, len(schedules))
	for _, s := range schedules {
		views = append(views, h.view(s, now, songs))
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, views)
}

// CreateSchedule adds an idle schedule
func (h *Handlers) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	s, err := h.player.CreateSchedule(req.StartTime, req.StopTime, req.RepeatDaily)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, h.view(s, h.clockNow(), h.player.SongCount()))
}

// UpdateSchedule changes a schedule's window and repeat flag
func (h *Handlers) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	s, err := h.player.EditSchedule(mux.Vars(r)["id"], req.StartTime, req.StopTime, req.RepeatDaily)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusOK, h.view(s, h.clockNow(), h.player.SongCount()))
}

// DeleteSchedule removes a schedule, stopping playback if it was live
func (h *Handlers) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.player.DeleteSchedule(mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TestSchedule starts a schedule's playback immediately
func (h *Handlers) TestSchedule(w http.ResponseWriter, r *http.Request) {
	snap, err := h.player.TestSchedule(mux.Vars(r)["id"])
	h.writeSnapshot(w, r, snap, err)
}

// StopTest ends a schedule's playback immediately
func (h *Handlers) StopTest(w http.ResponseWriter, r *http.Request) {
	snap, err := h.player.StopTest(mux.Vars(r)["id"])
	h.writeSnapshot(w, r, snap, err)
}

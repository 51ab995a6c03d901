package handlers

import (
	"net/http"
	"testing"

	"music-scheduler/internal/player"
	"music-scheduler/internal/scheduler"
	"music-scheduler/internal/youtube"
)

func (e *testEnv) createSchedule(t *testing.T, body string) ScheduleView {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/schedules", body)
	expectStatus(t, w, http.StatusCreated)
	return decode[ScheduleView](t, w)
}

func TestCreateSchedule(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	v := env.createSchedule(t, `{"startTime":"13:00","stopTime":"14:30","repeatDaily":true}`)
	if v.ID == "" || v.StartTime != "13:00" || v.StopTime != "14:30" || !v.RepeatDaily {
		t.Errorf("schedule = %+v", v.Schedule)
	}
	if v.Active {
		t.Error("new schedule is active")
	}
	if v.Status != scheduler.StatusScheduled {
		t.Errorf("status at noon = %q, want %q", v.Status, scheduler.StatusScheduled)
	}
	if v.Summary != "plays all 0 songs" {
		t.Errorf("summary = %q", v.Summary)
	}
	if v.Thumbnail != "" {
		t.Errorf("thumbnail = %q, want none for an empty playlist", v.Thumbnail)
	}
}

func TestCreateScheduleNormalisesTimes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	v := env.createSchedule(t, `{"startTime":"9:05","stopTime":"10:00"}`)
	if v.StartTime != "09:05" {
		t.Errorf("start = %q, want 09:05", v.StartTime)
	}
	if v.Status != scheduler.StatusInactive {
		t.Errorf("status = %q, want %q", v.Status, scheduler.StatusInactive)
	}
}

func TestCreateScheduleErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"stop before start", `{"startTime":"10:00","stopTime":"09:00"}`, http.StatusBadRequest, "Stop time must be after start time"},
		{"equal times", `{"startTime":"10:00","stopTime":"10:00"}`, http.StatusBadRequest, "Stop time must be after start time"},
		{"hour out of range", `{"startTime":"25:00","stopTime":"26:00"}`, http.StatusBadRequest, `start time: time must be in HH:MM format: "25:00"`},
		{"missing stop", `{"startTime":"10:00"}`, http.StatusBadRequest, `stop time: time must be in HH:MM format: ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			expectError(t, env.do(t, http.MethodPost, "/api/schedules", tt.body), tt.status, tt.msg)
			if n := len(env.ctrl.Schedules()); n != 0 {
				t.Errorf("%d schedules stored after rejection", n)
			}
		})
	}
}

func TestListSchedulesWithPreview(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.addVideo(t, videoA)
	env.createSchedule(t, `{"startTime":"08:00","stopTime":"09:00"}`)
	env.createSchedule(t, `{"startTime":"18:00","stopTime":"19:00"}`)

	views := decode[[]ScheduleView](t, env.do(t, http.MethodGet, "/api/schedules", ""))
	if len(views) != 2 {
		t.Fatalf("got %d schedules, want 2", len(views))
	}
	if views[0].StartTime != "08:00" || views[1].StartTime != "18:00" {
		t.Errorf("schedules out of creation order: %s, %s", views[0].StartTime, views[1].StartTime)
	}
	for _, v := range views {
		if v.Summary != "plays all 1 song" {
			t.Errorf("summary = %q", v.Summary)
		}
		if v.Thumbnail != youtube.ThumbnailURL(videoA) {
			t.Errorf("thumbnail = %q", v.Thumbnail)
		}
	}
}

func TestUpdateSchedule(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	created := env.createSchedule(t, `{"startTime":"08:00","stopTime":"09:00"}`)

	w := env.do(t, http.MethodPut, "/api/schedules/"+created.ID, `{"startTime":"20:00","stopTime":"21:00","repeatDaily":true}`)
	expectStatus(t, w, http.StatusOK)
	v := decode[ScheduleView](t, w)
	if v.ID != created.ID || v.StartTime != "20:00" || v.StopTime != "21:00" || !v.RepeatDaily {
		t.Errorf("updated = %+v", v.Schedule)
	}

	expectError(t, env.do(t, http.MethodPut, "/api/schedules/"+created.ID, `{"startTime":"21:00","stopTime":"20:00"}`),
		http.StatusBadRequest, "Stop time must be after start time")
	expectError(t, env.do(t, http.MethodPut, "/api/schedules/missing", `{"startTime":"01:00","stopTime":"02:00"}`),
		http.StatusNotFound, "schedule not found")
}

func TestTestAndStopSchedule(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	v := env.createSchedule(t, `{"startTime":"08:00","stopTime":"09:00"}`)

	expectError(t, env.do(t, http.MethodPost, "/api/schedules/"+v.ID+"/test", ""), http.StatusBadRequest, "No songs in playlist")

	env.addVideo(t, videoA)
	w := env.do(t, http.MethodPost, "/api/schedules/"+v.ID+"/test", "")
	expectStatus(t, w, http.StatusOK)
	snap := decode[player.Snapshot](t, w)
	if !snap.IsPlaying || snap.CurrentIndex != 0 || !snap.ShuffleEnabled {
		t.Errorf("after test: %+v", snap.PlaybackState)
	}

	views := decode[[]ScheduleView](t, env.do(t, http.MethodGet, "/api/schedules", ""))
	if views[0].Status != scheduler.StatusLive {
		t.Errorf("status while testing = %q, want %q", views[0].Status, scheduler.StatusLive)
	}

	snap = decode[player.Snapshot](t, env.do(t, http.MethodPost, "/api/schedules/"+v.ID+"/stop", ""))
	if snap.IsPlaying {
		t.Error("playback still running after stop")
	}
	if snap.CurrentIndex != 0 {
		t.Errorf("stop moved the index to %d", snap.CurrentIndex)
	}

	expectError(t, env.do(t, http.MethodPost, "/api/schedules/missing/test", ""), http.StatusNotFound, "schedule not found")
	expectError(t, env.do(t, http.MethodPost, "/api/schedules/missing/stop", ""), http.StatusNotFound, "schedule not found")
}

func TestDeleteLiveSchedule(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.addVideo(t, videoA)
	v := env.createSchedule(t, `{"startTime":"08:00","stopTime":"09:00"}`)
	expectStatus(t, env.do(t, http.MethodPost, "/api/schedules/"+v.ID+"/test", ""), http.StatusOK)

	expectStatus(t, env.do(t, http.MethodDelete, "/api/schedules/"+v.ID, ""), http.StatusNoContent)

	if env.ctrl.State().IsPlaying {
		t.Error("deleting the live schedule left playback running")
	}
	if n := len(env.ctrl.Schedules()); n != 0 {
		t.Errorf("%d schedules left", n)
	}
	expectError(t, env.do(t, http.MethodDelete, "/api/schedules/"+v.ID, ""), http.StatusNotFound, "schedule not found")
}

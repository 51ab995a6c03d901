package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"music-scheduler/internal/handlers"
	"music-scheduler/internal/player"
	"music-scheduler/internal/playlist"
	"music-scheduler/internal/remote"
	"music-scheduler/internal/uploads"
)

type stubTitles struct{}

func (stubTitles) FetchTitle(_ context.Context, videoID string) string {
	return "Title " + videoID
}

// newServer runs the real API over an in-memory controller.
func newServer(t *testing.T) *Client {
	t.Helper()

	store, err := uploads.New(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatal(err)
	}
	hub := remote.NewHub()
	ctrl := player.New(context.Background(), player.Options{
		Video:    remote.NewBackend(hub, remote.VideoBackend),
		Audio:    remote.NewBackend(hub, remote.AudioBackend),
		Titles:   stubTitles{},
		Releaser: store,
	})
	h := handlers.New(ctrl, store, hub, nil, handlers.Config{Location: time.UTC})

	srv := httptest.NewServer(handlers.NewRouter(h, handlers.RouterConfig{}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

func TestSongsRoundTrip(t *testing.T) {
	t.Parallel()
	c := newServer(t)
	ctx := context.Background()

	song, err := c.AddSong(ctx, "https://youtu.be/aaaaaaaaaaa")
	if err != nil {
		t.Fatalf("AddSong() error = %v", err)
	}
	if song.Title != "Title aaaaaaaaaaa" {
		t.Errorf("title = %q", song.Title)
	}

	bulk, err := c.AddBulk(ctx, "https://youtu.be/bbbbbbbbbbb\nnope")
	if err != nil {
		t.Fatalf("AddBulk() error = %v", err)
	}
	if bulk.Added != 1 {
		t.Errorf("bulk added %d, want 1", bulk.Added)
	}

	lib, err := c.Songs(ctx)
	if err != nil {
		t.Fatalf("Songs() error = %v", err)
	}
	if len(lib.Songs) != 2 {
		t.Fatalf("library has %d songs, want 2", len(lib.Songs))
	}

	if err := c.RemoveSong(ctx, song.ID); err != nil {
		t.Fatalf("RemoveSong() error = %v", err)
	}
	if lib, _ = c.Songs(ctx); len(lib.Songs) != 1 {
		t.Errorf("library has %d songs after removal, want 1", len(lib.Songs))
	}
}

func TestAPIErrorCarriesMessage(t *testing.T) {
	t.Parallel()
	c := newServer(t)

	_, err := c.AddSong(context.Background(), "https://example.com")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Error() != "Invalid YouTube URL" {
		t.Errorf("api error = %d %q", apiErr.StatusCode, apiErr.Error())
	}

	err = c.RemoveSong(context.Background(), "missing")
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("RemoveSong(missing) error = %v, want 404", err)
	}
}

func TestAPIErrorWithoutBody(t *testing.T) {
	t.Parallel()

	err := (&APIError{StatusCode: http.StatusBadGateway}).Error()
	if err != "server returned 502 Bad Gateway" {
		t.Errorf("Error() = %q", err)
	}
}

func TestUpload(t *testing.T) {
	t.Parallel()
	c := newServer(t)

	dir := t.TempDir()
	audio := filepath.Join(dir, "Evening.mp3")
	if err := os.WriteFile(audio, []byte("fake mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	resp, err := c.Upload(context.Background(), []string{audio})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if resp.Added != 1 || resp.Songs[0].Kind != playlist.KindLocalAudio || resp.Songs[0].Title != "Evening" {
		t.Errorf("upload response = %+v", resp)
	}

	if _, err := c.Upload(context.Background(), []string{filepath.Join(dir, "missing.mp3")}); err == nil {
		t.Error("Upload() of a missing file succeeded")
	}
}

func TestPlayerControls(t *testing.T) {
	t.Parallel()
	c := newServer(t)
	ctx := context.Background()

	if _, err := c.Toggle(ctx); err == nil || err.Error() != "No songs in playlist" {
		t.Errorf("Toggle() on empty playlist error = %v", err)
	}

	for _, id := range []string{"aaaaaaaaaaa", "bbbbbbbbbbb"} {
		if _, err := c.AddSong(ctx, "https://youtu.be/"+id); err != nil {
			t.Fatal(err)
		}
	}

	snap, err := c.PlayIndex(ctx, 1)
	if err != nil || snap.CurrentIndex != 1 || !snap.IsPlaying {
		t.Fatalf("PlayIndex(1) = %+v, %v", snap.PlaybackState, err)
	}
	if snap, _ = c.Next(ctx); snap.CurrentIndex != 0 {
		t.Errorf("Next() index = %d, want 0", snap.CurrentIndex)
	}
	if snap, _ = c.Previous(ctx); snap.CurrentIndex != 1 {
		t.Errorf("Previous() index = %d, want 1", snap.CurrentIndex)
	}
	if snap, _ = c.Shuffle(ctx); !snap.ShuffleEnabled {
		t.Error("Shuffle() did not enable shuffle")
	}
	if snap, _ = c.SetVolume(ctx, 42); snap.Volume != 42 {
		t.Errorf("SetVolume(42) volume = %d", snap.Volume)
	}
	if snap, _ = c.Toggle(ctx); snap.IsPlaying {
		t.Error("Toggle() did not pause")
	}

	state, err := c.Player(ctx)
	if err != nil || state.Volume != 42 || state.IsPlaying {
		t.Errorf("Player() = %+v, %v", state.PlaybackState, err)
	}
}

func TestScheduleLifecycle(t *testing.T) {
	t.Parallel()
	c := newServer(t)
	ctx := context.Background()

	if _, err := c.AddSong(ctx, "https://youtu.be/aaaaaaaaaaa"); err != nil {
		t.Fatal(err)
	}

	view, err := c.CreateSchedule(ctx, ScheduleInput{StartTime: "7:30", StopTime: "08:00"})
	if err != nil {
		t.Fatalf("CreateSchedule() error = %v", err)
	}
	if view.StartTime != "07:30" {
		t.Errorf("start = %q, want 07:30", view.StartTime)
	}

	if _, err := c.CreateSchedule(ctx, ScheduleInput{StartTime: "08:00", StopTime: "07:00"}); err == nil ||
		err.Error() != "Stop time must be after start time" {
		t.Errorf("invalid window error = %v", err)
	}

	view, err = c.EditSchedule(ctx, view.ID, ScheduleInput{StartTime: "09:00", StopTime: "10:00", RepeatDaily: true})
	if err != nil || view.StartTime != "09:00" || !view.RepeatDaily {
		t.Fatalf("EditSchedule() = %+v, %v", view.Schedule, err)
	}

	snap, err := c.TestSchedule(ctx, view.ID)
	if err != nil || !snap.IsPlaying {
		t.Fatalf("TestSchedule() = %+v, %v", snap.PlaybackState, err)
	}
	if snap, err = c.StopTest(ctx, view.ID); err != nil || snap.IsPlaying {
		t.Fatalf("StopTest() = %+v, %v", snap.PlaybackState, err)
	}

	views, err := c.Schedules(ctx)
	if err != nil || len(views) != 1 {
		t.Fatalf("Schedules() = %d, %v", len(views), err)
	}

	if err := c.DeleteSchedule(ctx, view.ID); err != nil {
		t.Fatalf("DeleteSchedule() error = %v", err)
	}
	if views, _ = c.Schedules(ctx); len(views) != 0 {
		t.Errorf("%d schedules left", len(views))
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	c := newServer(t)

	health, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("status = %q", health.Status)
	}
}

func TestUnreachableServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	if _, err := New(addr, nil).Player(context.Background()); err == nil {
		t.Error("Player() against a closed server succeeded")
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"a.mp3":        "audio/mpeg",
		"B.FLAC":       "audio/flac",
		"dir/c.m4a":    "audio/mp4",
		"cover.png":    "image/png",
		"no-extension": "application/octet-stream",
	}
	for path, want := range tests {
		if got := ContentType(path); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", path, got, want)
		}
	}
}

package player

import (
	"context"
	"errors"
	"testing"

	"music-scheduler/internal/playlist"
	"music-scheduler/internal/youtube"
)

func TestAddURL(t *testing.T) {
	t.Parallel()

	h := newHarness()
	song, err := h.c.AddURL(context.Background(), "  https://youtu.be/dQw4w9WgXcQ ")
	if err != nil {
		t.Fatalf("AddURL() error = %v", err)
	}

	if song.VideoID != "dQw4w9WgXcQ" || song.Kind != playlist.KindExternalVideo {
		t.Errorf("song = %+v", song)
	}
	if song.Title != "Title dQw4w9WgXcQ" {
		t.Errorf("title = %q", song.Title)
	}
	if song.Link != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("link = %q, want trimmed input", song.Link)
	}

	saved := h.store.saved()
	if len(saved) != 1 || saved[0].ID != song.ID {
		t.Errorf("saved = %+v", saved)
	}
}

func TestAddURLInvalid(t *testing.T) {
	t.Parallel()

	h := newHarness()
	_, err := h.c.AddURL(context.Background(), "https://vimeo.com/123456789")
	if !errors.Is(err, youtube.ErrInvalidURL) {
		t.Fatalf("AddURL() error = %v, want ErrInvalidURL", err)
	}
	if err.Error() != "Invalid YouTube URL" {
		t.Errorf("message = %q", err.Error())
	}
	if h.c.SongCount() != 0 || h.store.saves != 0 {
		t.Error("invalid URL changed state")
	}
	if len(h.titles.asked) != 0 {
		t.Error("title looked up for an invalid URL")
	}
}

func TestAddURLWithoutFetcherUsesPlaceholder(t *testing.T) {
	t.Parallel()

	c := New(context.Background(), Options{})
	song, err := c.AddURL(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatal(err)
	}
	if song.Title != "External Video (dQw4w9WgXcQ)" {
		t.Errorf("title = %q", song.Title)
	}
}

func TestAddBulk(t *testing.T) {
	t.Parallel()

	h := newHarness()
	input := "dQw4w9WgXcQ\n\nnot a url\n  https://youtu.be/abcdefghijk  \nhttps://example.com"

	songs, err := h.c.AddBulk(context.Background(), input)
	if err != nil {
		t.Fatalf("AddBulk() error = %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("added %d songs, want 2", len(songs))
	}
	if songs[0].VideoID != "dQw4w9WgXcQ" || songs[1].VideoID != "abcdefghijk" {
		t.Errorf("order = %s, %s", songs[0].VideoID, songs[1].VideoID)
	}
	if songs[1].Title != "Title abcdefghijk" || songs[1].Link != "https://youtu.be/abcdefghijk" {
		t.Errorf("second song = %+v", songs[1])
	}

	lib := h.c.Library()
	if len(lib.Songs) != 2 || len(lib.Active) != 2 {
		t.Errorf("library = %d songs, %d active", len(lib.Songs), len(lib.Active))
	}
	if len(h.store.saved()) != 2 {
		t.Error("bulk add not persisted")
	}
}

func TestAddBulkNoValidURLs(t *testing.T) {
	t.Parallel()

	h := newHarness()
	for _, input := range []string{"", "   \n\n", "https://vimeo.com/1\nabc123"} {
		_, err := h.c.AddBulk(context.Background(), input)
		if !errors.Is(err, ErrNoValidURLs) {
			t.Errorf("AddBulk(%q) error = %v, want ErrNoValidURLs", input, err)
		}
	}
	if ErrNoValidURLs.Error() != "No valid YouTube URLs found" {
		t.Errorf("message = %q", ErrNoValidURLs.Error())
	}
	if h.c.SongCount() != 0 {
		t.Error("playlist changed")
	}
}

func TestAddBulkKeepsCurrentSelection(t *testing.T) {
	t.Parallel()

	h := newHarness(video("v1", "aaaaaaaaaaa"), video("v2", "bbbbbbbbbbb"))
	h.c.ToggleShuffle() // active view [v2 v1]
	if _, err := h.c.PlayIndex(1); err != nil {
		t.Fatal(err)
	}

	if _, err := h.c.AddBulk(context.Background(), "ccccccccccc"); err != nil {
		t.Fatal(err)
	}

	st := h.c.State()
	if st.CurrentSong == nil || st.CurrentSong.ID != "v1" {
		t.Fatalf("current song = %+v, want v1", st.CurrentSong)
	}
	lib := h.c.Library()
	if lib.Active[st.CurrentIndex].ID != "v1" {
		t.Errorf("CurrentIndex %d does not point at v1 in %+v", st.CurrentIndex, lib.Active)
	}
}

func TestAddAudio(t *testing.T) {
	t.Parallel()

	h := newHarness()
	songs := []playlist.Song{audio("a1", "one.mp3"), audio("a2", "two.ogg")}
	if err := h.c.AddAudio(context.Background(), songs); err != nil {
		t.Fatalf("AddAudio() error = %v", err)
	}
	if got := h.c.SongCount(); got != 2 {
		t.Errorf("SongCount() = %d, want 2", got)
	}

	err := h.c.AddAudio(context.Background(), []playlist.Song{video("v1", "aaaaaaaaaaa")})
	if !errors.Is(err, playlist.ErrInvalidSong) {
		t.Errorf("AddAudio(video) error = %v, want ErrInvalidSong", err)
	}
	if got := h.c.SongCount(); got != 2 {
		t.Errorf("rejected add changed playlist: %d songs", got)
	}
}

func TestRemoveCurrentSong(t *testing.T) {
	t.Parallel()

	h := newHarness(video("v1", "aaaaaaaaaaa"), audio("a1", "x.mp3"))
	if _, err := h.c.PlayIndex(1); err != nil {
		t.Fatal(err)
	}
	h.log.reset()

	if err := h.c.RemoveSong(context.Background(), "a1"); err != nil {
		t.Fatalf("RemoveSong() error = %v", err)
	}

	st := h.c.State()
	if st.IsPlaying || st.CurrentIndex != -1 {
		t.Errorf("state = %+v, want stopped with no selection", st.PlaybackState)
	}
	if got := h.log.all(); len(got) != 2 || got[0] != "video:pause" || got[1] != "audio:pause" {
		t.Errorf("backend calls = %v, want both halted", got)
	}
	if len(h.releaser.released) != 1 || h.releaser.released[0] != "x.mp3" {
		t.Errorf("released = %v", h.releaser.released)
	}
	if saved := h.store.saved(); len(saved) != 1 || saved[0].ID != "v1" {
		t.Errorf("saved = %+v", saved)
	}
}

func TestRemoveOtherSongKeepsSelection(t *testing.T) {
	t.Parallel()

	h := newHarness(video("v1", "aaaaaaaaaaa"), video("v2", "bbbbbbbbbbb"), video("v3", "ccccccccccc"))
	if _, err := h.c.PlayIndex(1); err != nil {
		t.Fatal(err)
	}

	if err := h.c.RemoveSong(context.Background(), "v1"); err != nil {
		t.Fatal(err)
	}

	st := h.c.State()
	if st.CurrentSong == nil || st.CurrentSong.ID != "v2" || st.CurrentIndex != 0 {
		t.Errorf("current = %+v at %d, want v2 at 0", st.CurrentSong, st.CurrentIndex)
	}
	if !st.IsPlaying {
		t.Error("playback stopped when removing another song")
	}
	if len(h.releaser.released) != 0 {
		t.Errorf("released = %v, want none for video", h.releaser.released)
	}
}

func TestRemoveMissingSong(t *testing.T) {
	t.Parallel()

	h := newHarness(video("v1", "aaaaaaaaaaa"))
	if err := h.c.RemoveSong(context.Background(), "nope"); !errors.Is(err, ErrSongNotFound) {
		t.Errorf("RemoveSong() error = %v, want ErrSongNotFound", err)
	}
}

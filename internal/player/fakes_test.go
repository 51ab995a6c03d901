package player

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"music-scheduler/internal/playlist"
)

// callLog is shared by both fake backends so tests can assert cross-backend ordering.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.calls)
}

func (l *callLog) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = nil
}

type fakeBackend struct {
	name     string
	log      *callLog
	notReady bool
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) record(call string) error {
	b.log.add(b.name + ":" + call)
	if b.notReady {
		return errors.New("not ready")
	}
	return nil
}

func (b *fakeBackend) Load(song playlist.Song) error { return b.record("load " + song.ID) }
func (b *fakeBackend) Play() error                   { return b.record("play") }
func (b *fakeBackend) Pause() error                  { return b.record("pause") }
func (b *fakeBackend) SetVolume(v int) error         { return b.record(fmt.Sprintf("volume %d", v)) }

type fakeStore struct {
	mu      sync.Mutex
	songs   []playlist.Song
	loadErr error
	saves   int
}

func (s *fakeStore) LoadPlaylist(context.Context) ([]playlist.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return slices.Clone(s.songs), nil
}

func (s *fakeStore) SavePlaylist(_ context.Context, songs []playlist.Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.songs = slices.Clone(songs)
	s.saves++
	return nil
}

func (s *fakeStore) saved() []playlist.Song {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.songs)
}

type fakeTitles struct {
	mu    sync.Mutex
	asked []string
}

func (f *fakeTitles) FetchTitle(_ context.Context, videoID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.asked = append(f.asked, videoID)
	return "Title " + videoID
}

type fakeReleaser struct {
	released []string
}

func (r *fakeReleaser) Release(handle string) error {
	r.released = append(r.released, handle)
	return nil
}

func reverseShuffle(songs []playlist.Song) []playlist.Song {
	out := slices.Clone(songs)
	slices.Reverse(out)
	return out
}

type harness struct {
	c        *Controller
	log      *callLog
	video    *fakeBackend
	audio    *fakeBackend
	store    *fakeStore
	titles   *fakeTitles
	releaser *fakeReleaser
}

func newHarness(stored ...playlist.Song) *harness {
	log := &callLog{}
	h := &harness{
		log:      log,
		video:    &fakeBackend{name: "video", log: log},
		audio:    &fakeBackend{name: "audio", log: log},
		store:    &fakeStore{songs: stored},
		titles:   &fakeTitles{},
		releaser: &fakeReleaser{},
	}
	h.c = New(context.Background(), Options{
		Video:        h.video,
		Audio:        h.audio,
		Store:        h.store,
		Titles:       h.titles,
		Releaser:     h.releaser,
		TitleWorkers: 2,
		Shuffle:      reverseShuffle,
		RandIntN:     func(int) int { return 0 },
	})
	return h
}

func video(id, videoID string) playlist.Song {
	return playlist.Song{ID: id, Title: id, Kind: playlist.KindExternalVideo, VideoID: videoID}
}

func audio(id, handle string) playlist.Song {
	return playlist.Song{ID: id, Title: id, Kind: playlist.KindLocalAudio, AudioHandle: handle}
}

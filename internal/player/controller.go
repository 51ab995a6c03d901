package player

import (
	"context"
	"math/rand/v2"
	"sync"

	"music-scheduler/internal/logging"
	"music-scheduler/internal/metrics"
	"music-scheduler/internal/playlist"
	"music-scheduler/internal/scheduler"
	"music-scheduler/internal/workers"
)

// Options configures a Controller. Only the two backends are required.
type Options struct {
	Video Backend
	Audio Backend

	Store    Store
	Titles   TitleFetcher
	Releaser AudioReleaser

	// Volume is the starting volume; nil means DefaultVolume.
	Volume       *int
	TitleWorkers int

	// Shuffle and RandIntN replace the random sources, for tests.
	Shuffle  func([]playlist.Song) []playlist.Song
	RandIntN func(n int) int
}

// Controller is the single owner of playlist, schedules and playback.
type Controller struct {
	mu sync.Mutex

	playlist  *playlist.Playlist
	schedules []scheduler.Schedule
	state     PlaybackState

	backends map[playlist.Kind]Backend

	store        Store
	titles       TitleFetcher
	releaser     AudioReleaser
	titleWorkers int
	intN         func(int) int
}

// New creates a controller and restores the persisted playlist. A missing or
// unreadable playlist starts empty.
func New(ctx context.Context, opts Options) *Controller {
	pl := playlist.New()
	if opts.Shuffle != nil {
		pl = playlist.NewWithShuffler(opts.Shuffle)
	}

	volume := DefaultVolume
	if opts.Volume != nil {
		volume = *opts.Volume
	}
	titleWorkers := opts.TitleWorkers
	if titleWorkers <= 0 {
		titleWorkers = workers.ForIO(16)
	}
	intN := opts.RandIntN
	if intN == nil {
		intN = rand.IntN
	}

	c := &Controller{
		playlist: pl,
		state: PlaybackState{
			CurrentIndex: -1,
			Volume:       clampVolume(volume),
		},
		backends:     make(map[playlist.Kind]Backend, 2),
		store:        opts.Store,
		titles:       opts.Titles,
		releaser:     opts.Releaser,
		titleWorkers: titleWorkers,
		intN:         intN,
	}

	if opts.Video != nil {
		c.backends[playlist.KindExternalVideo] = opts.Video
	}
	if opts.Audio != nil {
		c.backends[playlist.KindLocalAudio] = opts.Audio
	}

	c.restore(ctx)
	return c
}

func (c *Controller) restore(ctx context.Context) {
	if c.store == nil {
		return
	}

	songs, err := c.store.LoadPlaylist(ctx)
	if err != nil {
		logging.Warn("Failed to load playlist, starting empty: %v", err)
		return
	}

	valid := songs[:0]
	seen := make(map[string]bool, len(songs))
	for _, s := range songs {
		if err := s.Validate(); err != nil {
			logging.Warn("Dropping stored song: %v", err)
			continue
		}
		if seen[s.ID] {
			logging.Warn("Dropping stored song %q: duplicate id %s", s.Title, s.ID)
			continue
		}
		seen[s.ID] = true
		valid = append(valid, s)
	}

	c.playlist.Restore(valid)
	logging.Info("Restored %d songs", len(valid))
}

// persist saves the canonical playlist. Failures are logged; the in-memory
// playlist stays authoritative. Must be called with c.mu held.
func (c *Controller) persist(ctx context.Context) {
	if c.store == nil {
		return
	}
	if err := c.store.SavePlaylist(ctx, c.playlist.Songs()); err != nil {
		logging.Warn("Failed to save playlist: %v", err)
	}
}

// GetStats implements metrics.StatsProvider.
func (c *Controller) GetStats() metrics.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	counts := c.playlist.CountByKind()
	active := 0
	for _, s := range c.schedules {
		if s.Active {
			active++
		}
	}

	return metrics.Stats{
		VideoSongs:      counts[playlist.KindExternalVideo],
		AudioSongs:      counts[playlist.KindLocalAudio],
		Schedules:       len(c.schedules),
		ActiveSchedules: active,
		Playing:         c.state.IsPlaying,
		Volume:          c.state.Volume,
	}
}

// command sends one instruction to a backend and records the outcome.
// A failing backend is not ready yet; it picks up the state on its next command.
func (c *Controller) command(b Backend, action string, fn func() error) {
	if err := fn(); err != nil {
		metrics.BackendCommandsTotal.WithLabelValues(b.Name(), action, "not_ready").Inc()
		logging.Debug("Backend %s %s skipped: %v", b.Name(), action, err)
		return
	}
	metrics.BackendCommandsTotal.WithLabelValues(b.Name(), action, "success").Inc()
}

var backendOrder = []playlist.Kind{playlist.KindExternalVideo, playlist.KindLocalAudio}

// haltAll pauses every backend.
func (c *Controller) haltAll() {
	for _, kind := range backendOrder {
		if b, ok := c.backends[kind]; ok {
			c.command(b, "pause", b.Pause)
		}
	}
}

func (c *Controller) currentSong() (playlist.Song, bool) {
	return c.playlist.At(c.state.CurrentIndex)
}

// playCurrent loads the current song into its backend and plays it, pausing
// the other backend first. It does nothing unless IsPlaying is asserted.
func (c *Controller) playCurrent() {
	song, ok := c.currentSong()
	if !ok || !c.state.IsPlaying {
		return
	}

	for _, kind := range backendOrder {
		if b, ok := c.backends[kind]; ok && kind != song.Kind {
			c.command(b, "pause", b.Pause)
		}
	}

	b, ok := c.backends[song.Kind]
	if !ok {
		logging.Warn("No backend for %s songs", song.Kind)
		return
	}
	c.command(b, "load", func() error { return b.Load(song) })
	c.command(b, "volume", func() error { return b.SetVolume(c.state.Volume) })
	c.command(b, "play", b.Play)
}

func (c *Controller) resetProgress() {
	c.state.Progress = 0
	c.state.Duration = 0
}

// reselect points CurrentIndex back at the song with the given id after the
// active view changed. An empty id leaves nothing selected.
func (c *Controller) reselect(id string) {
	if id == "" {
		c.state.CurrentIndex = -1
		return
	}
	c.state.CurrentIndex = c.playlist.ActiveIndexOf(id)
}

func (c *Controller) currentID() string {
	if song, ok := c.currentSong(); ok {
		return song.ID
	}
	return ""
}

package player

import (
	"context"

	"music-scheduler/internal/playlist"
)

// DefaultVolume is used when no volume is configured.
const DefaultVolume = 70

// PlaybackState is the process-wide playback record.
type PlaybackState struct {
	// CurrentIndex points into the active playlist view; -1 means nothing is selected.
	CurrentIndex int     `json:"currentIndex"`
	IsPlaying    bool    `json:"isPlaying"`
	Volume       int     `json:"volume"`
	Progress     float64 `json:"progress"`
	Duration     float64 `json:"duration"`
}

// Snapshot is a consistent copy of the playback state for display.
type Snapshot struct {
	PlaybackState
	ShuffleEnabled bool           `json:"shuffleEnabled"`
	CurrentSong    *playlist.Song `json:"currentSong,omitempty"`
}

// Backend mirrors playback for one kind of song.
// Errors mean the backend is not ready; the controller logs and carries on.
type Backend interface {
	Name() string
	Load(song playlist.Song) error
	Play() error
	Pause() error
	SetVolume(volume int) error
}

// Store persists the canonical playlist.
type Store interface {
	LoadPlaylist(ctx context.Context) ([]playlist.Song, error)
	SavePlaylist(ctx context.Context, songs []playlist.Song) error
}

// TitleFetcher resolves a video title, falling back to a placeholder itself.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, videoID string) string
}

// AudioReleaser frees the resource behind a local-audio handle.
type AudioReleaser interface {
	Release(handle string) error
}

func clampVolume(v int) int {
	return min(max(v, 0), 100)
}

package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"music-scheduler/internal/playlist"
)

// ErrNotReady is returned when no player is attached to receive a command.
var ErrNotReady = errors.New("no player attached")

// AudioPathPrefix is where uploaded audio is served to players.
const AudioPathPrefix = "/api/audio/"

// Backend names.
const (
	VideoBackend = "video"
	AudioBackend = "audio"
)

// Command actions.
const (
	ActionLoad   = "load"
	ActionPlay   = "play"
	ActionPause  = "pause"
	ActionVolume = "volume"
	ActionState  = "state"
)

// Command is what players receive. Every command carries the full desired
// state, so a player that missed earlier commands still ends up correct.
type Command struct {
	Backend string         `json:"backend"`
	Action  string         `json:"action"`
	Song    *playlist.Song `json:"song,omitempty"`
	Src     string         `json:"src,omitempty"`
	Playing bool           `json:"playing"`
	Volume  int            `json:"volume"`
}

// Backend mirrors one browser media element.
type Backend struct {
	name string
	hub  *Hub

	mu      sync.Mutex
	song    *playlist.Song
	playing bool
	volume  int
}

// NewBackend creates a backend named name and attaches it to hub.
func NewBackend(hub *Hub, name string) *Backend {
	b := &Backend{name: name, hub: hub}
	hub.attach(b)
	return b
}

// Name returns the backend name used in commands and metrics.
func (b *Backend) Name() string {
	return b.name
}

// Load selects song without starting it.
func (b *Backend) Load(song playlist.Song) error {
	return b.apply(ActionLoad, func() {
		b.song = &song
		b.playing = false
	})
}

// Play starts or resumes the loaded song.
func (b *Backend) Play() error {
	return b.apply(ActionPlay, func() { b.playing = true })
}

// Pause halts playback, keeping the loaded song.
func (b *Backend) Pause() error {
	return b.apply(ActionPause, func() { b.playing = false })
}

// SetVolume sets the output volume, 0-100.
func (b *Backend) SetVolume(volume int) error {
	return b.apply(ActionVolume, func() { b.volume = volume })
}

// Playing reports the recorded play state.
func (b *Backend) Playing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.playing
}

// apply records the change, broadcasts it, and reports whether anyone heard it.
func (b *Backend) apply(action string, change func()) error {
	b.mu.Lock()
	change()
	msg, err := b.encode(action)
	b.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encoding %s command: %w", action, err)
	}

	if b.hub.Clients() == 0 {
		return ErrNotReady
	}
	b.hub.Broadcast(msg)
	return nil
}

func (b *Backend) stateMessage() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.encode(ActionState)
}

// encode must be called with b.mu held.
func (b *Backend) encode(action string) ([]byte, error) {
	cmd := Command{
		Backend: b.name,
		Action:  action,
		Playing: b.playing,
		Volume:  b.volume,
	}
	if b.song != nil {
		song := *b.song
		cmd.Song = &song
		cmd.Src = SourceURL(song)
	}
	return json.Marshal(cmd)
}

// SourceURL is the address a player loads song from. Video players use the
// song's video ID instead and get an empty string.
func SourceURL(song playlist.Song) string {
	if song.Kind == playlist.KindLocalAudio && song.AudioHandle != "" {
		return AudioPathPrefix + song.AudioHandle
	}
	return ""
}

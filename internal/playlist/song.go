package playlist

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Kind selects the playback strategy for a song.
type Kind string

const (
	KindExternalVideo Kind = "external-video"
	KindLocalAudio    Kind = "local-audio"
)

// ErrInvalidSong is returned by Validate.
var ErrInvalidSong = errors.New("invalid song")

// Song is a playable playlist entry.
type Song struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind"`

	// external-video
	VideoID string `json:"videoId,omitempty"`
	Link    string `json:"link,omitempty"`

	// local-audio
	AudioHandle string `json:"audioHandle,omitempty"`
}

// NewVideoSong creates an external-video song with a fresh ID.
func NewVideoSong(videoID, link, title string) Song {
	return Song{
		ID:      uuid.NewString(),
		Title:   title,
		Kind:    KindExternalVideo,
		VideoID: videoID,
		Link:    link,
	}
}

// NewAudioSong creates a local-audio song with a fresh ID.
func NewAudioSong(handle, title string) Song {
	return Song{
		ID:          uuid.NewString(),
		Title:       title,
		Kind:        KindLocalAudio,
		AudioHandle: handle,
	}
}

// TitleFromFilename strips the last extension, the way uploaded files are named.
func TitleFromFilename(name string) string {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

// Validate checks that the fields required by the song's kind are present.
func (s Song) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidSong)
	}
	switch s.Kind {
	case KindExternalVideo:
		if s.VideoID == "" {
			return fmt.Errorf("%w: external-video %s has no video id", ErrInvalidSong, s.ID)
		}
	case KindLocalAudio:
		if s.AudioHandle == "" {
			return fmt.Errorf("%w: local-audio %s has no handle", ErrInvalidSong, s.ID)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSong, s.Kind)
	}
	return nil
}

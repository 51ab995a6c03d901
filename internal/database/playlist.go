package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"music-scheduler/internal/logging"
	"music-scheduler/internal/playlist"
)

// PlaylistKey is the metadata key holding the serialized playlist.
const PlaylistKey = "musicscheduler_playlist"

// LoadPlaylist returns the stored playlist. A missing key or undecodable
// value yields an empty playlist; only database failures are errors.
func (d *Database) LoadPlaylist(ctx context.Context) ([]playlist.Song, error) {
	start := time.Now()
	var err error
	defer func() { recordQuery("load_playlist", start, err) }()

	raw, getErr := d.GetMetadata(ctx, PlaylistKey)
	if errors.Is(getErr, ErrNotFound) || (getErr == nil && raw == "") {
		return nil, nil
	}
	if getErr != nil {
		err = getErr
		return nil, fmt.Errorf("reading playlist: %w", err)
	}

	var songs []playlist.Song
	if decodeErr := json.Unmarshal([]byte(raw), &songs); decodeErr != nil {
		logging.Warn("Stored playlist is corrupt, treating as empty: %v", decodeErr)
		return nil, nil
	}
	return songs, nil
}

// SavePlaylist stores songs, or removes the key when there are none.
func (d *Database) SavePlaylist(ctx context.Context, songs []playlist.Song) error {
	start := time.Now()
	var err error
	defer func() { recordQuery("save_playlist", start, err) }()

	if len(songs) == 0 {
		err = d.DeleteMetadata(ctx, PlaylistKey)
		return err
	}

	data, err := json.Marshal(songs)
	if err != nil {
		return fmt.Errorf("encoding playlist: %w", err)
	}
	err = d.SetMetadata(ctx, PlaylistKey, string(data))
	return err
}

package player

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"music-scheduler/internal/logging"
	"music-scheduler/internal/playlist"
	"music-scheduler/internal/youtube"
)

// Library is the playlist as shown to users.
type Library struct {
	Songs          []playlist.Song `json:"songs"`
	Active         []playlist.Song `json:"active"`
	ShuffleEnabled bool            `json:"shuffleEnabled"`
}

// Library returns the canonical order and the active view.
func (c *Controller) Library() Library {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Library{
		Songs:          c.playlist.Songs(),
		Active:         c.playlist.Active(),
		ShuffleEnabled: c.playlist.ShuffleEnabled,
	}
}

// AddURL adds one external video. The title lookup runs before the state
// lock is taken, so playback is never blocked on the network.
func (c *Controller) AddURL(ctx context.Context, link string) (playlist.Song, error) {
	videoID, ok := youtube.ExtractVideoID(link)
	if !ok {
		return playlist.Song{}, youtube.ErrInvalidURL
	}

	song := playlist.NewVideoSong(videoID, strings.TrimSpace(link), c.fetchTitle(ctx, videoID))

	c.mu.Lock()
	defer c.mu.Unlock()

	c.playlist.Append(song)
	c.fillPreviews()
	c.persist(ctx)

	logging.Info("Added %q (%s)", song.Title, videoID)
	return song, nil
}

// AddBulk adds every recognizable link in newline-separated text, looking up
// titles in parallel. Unrecognized lines are skipped. The shuffled view is
// regenerated to include the new songs.
func (c *Controller) AddBulk(ctx context.Context, text string) ([]playlist.Song, error) {
	type candidate struct {
		link    string
		videoID string
	}

	var candidates []candidate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if id, ok := youtube.ExtractVideoID(line); ok {
			candidates = append(candidates, candidate{link: line, videoID: id})
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoValidURLs
	}

	titles := make([]string, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.titleWorkers)
	for i, cand := range candidates {
		g.Go(func() error {
			titles[i] = c.fetchTitle(gctx, cand.videoID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching titles: %w", err)
	}

	songs := make([]playlist.Song, len(candidates))
	for i, cand := range candidates {
		songs[i] = playlist.NewVideoSong(cand.videoID, cand.link, titles[i])
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.currentID()
	c.playlist.AppendReshuffle(songs...)
	c.reselect(current)
	c.fillPreviews()
	c.persist(ctx)

	logging.Info("Added %d songs from bulk input", len(songs))
	return songs, nil
}

// AddAudio adds uploaded local-audio songs and regenerates the shuffled view.
func (c *Controller) AddAudio(ctx context.Context, songs []playlist.Song) error {
	for _, s := range songs {
		if s.Kind != playlist.KindLocalAudio {
			return fmt.Errorf("%w: %s is %s", playlist.ErrInvalidSong, s.ID, s.Kind)
		}
		if err := s.Validate(); err != nil {
			return err
		}
	}
	if len(songs) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.currentID()
	c.playlist.AppendReshuffle(songs...)
	c.reselect(current)
	c.persist(ctx)

	logging.Info("Added %d uploaded songs", len(songs))
	return nil
}

// RemoveSong deletes a song. Removing the current song halts playback and
// clears the selection; otherwise the current song stays selected. The local
// resource behind an audio song is released.
func (c *Controller) RemoveSong(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.playlist.Find(id); !ok {
		return ErrSongNotFound
	}

	current := c.currentID()
	if current == id {
		c.state.IsPlaying = false
		c.haltAll()
		current = ""
	}

	removed, _ := c.playlist.Remove(id)
	c.reselect(current)

	if removed.Kind == playlist.KindLocalAudio && c.releaser != nil {
		if err := c.releaser.Release(removed.AudioHandle); err != nil {
			logging.Warn("Failed to release %s: %v", removed.AudioHandle, err)
		}
	}

	c.persist(ctx)
	logging.Info("Removed %q", removed.Title)
	return nil
}

func (c *Controller) fetchTitle(ctx context.Context, videoID string) string {
	if c.titles == nil {
		return youtube.PlaceholderTitle(videoID)
	}
	title := c.titles.FetchTitle(ctx, videoID)
	if title == "" {
		return youtube.PlaceholderTitle(videoID)
	}
	return title
}

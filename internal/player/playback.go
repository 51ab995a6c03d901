package player

import "music-scheduler/internal/logging"

// State returns a copy of the playback state with the current song.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() Snapshot {
	snap := Snapshot{
		PlaybackState:  c.state,
		ShuffleEnabled: c.playlist.ShuffleEnabled,
	}
	if song, ok := c.currentSong(); ok {
		snap.CurrentSong = &song
	}
	return snap
}

// TogglePlay pauses or resumes the current song. With nothing selected it
// starts from the top of the active view.
func (c *Controller) TogglePlay() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playlist.Len() == 0 {
		return c.snapshot(), ErrEmptyPlaylist
	}

	song, ok := c.currentSong()
	if !ok {
		c.state.CurrentIndex = 0
		c.state.IsPlaying = true
		c.playCurrent()
		return c.snapshot(), nil
	}

	b, hasBackend := c.backends[song.Kind]
	if c.state.IsPlaying {
		c.state.IsPlaying = false
		if hasBackend {
			c.command(b, "pause", b.Pause)
		}
	} else {
		c.state.IsPlaying = true
		if hasBackend {
			c.command(b, "play", b.Play)
		}
	}
	return c.snapshot(), nil
}

// PlayIndex selects and plays the song at index of the active view.
func (c *Controller) PlayIndex(index int) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.playlist.At(index); !ok {
		return c.snapshot(), ErrIndexOutOfRange
	}

	c.state.CurrentIndex = index
	c.state.IsPlaying = true
	c.resetProgress()
	c.playCurrent()
	return c.snapshot(), nil
}

// Next moves to the following song, wrapping to the first.
func (c *Controller) Next() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.step(1); err != nil {
		return c.snapshot(), err
	}
	return c.snapshot(), nil
}

// Previous moves to the preceding song, wrapping to the last.
func (c *Controller) Previous() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.step(-1); err != nil {
		return c.snapshot(), err
	}
	return c.snapshot(), nil
}

// step moves the selection by delta. Going back from the first song (or from
// no selection) lands on the last one.
func (c *Controller) step(delta int) error {
	n := c.playlist.Len()
	if n == 0 {
		return ErrEmptyPlaylist
	}

	cur := c.state.CurrentIndex
	switch {
	case delta > 0:
		cur = (cur + 1) % n
	case cur <= 0:
		cur = n - 1
	default:
		cur--
	}

	c.state.CurrentIndex = cur
	c.resetProgress()
	c.playCurrent()
	return nil
}

// TrackEnded advances after a backend reports the end of songID. Reports for
// a song that is no longer current are ignored.
func (c *Controller) TrackEnded(songID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if songID != "" && songID != c.currentID() {
		logging.Debug("Ignoring end of %s, not current", songID)
		return
	}
	if err := c.step(1); err != nil {
		logging.Debug("Track ended with empty playlist")
	}
}

// ReportProgress records the position reported for songID.
func (c *Controller) ReportProgress(songID string, position, duration float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if songID != "" && songID != c.currentID() {
		return
	}
	c.state.Progress = max(position, 0)
	c.state.Duration = max(duration, 0)
}

// ToggleShuffle switches between canonical order and a freshly shuffled view,
// keeping the current song selected.
func (c *Controller) ToggleShuffle() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.currentID()
	if !c.playlist.ShuffleEnabled {
		c.playlist.Reshuffle()
	}
	c.playlist.ShuffleEnabled = !c.playlist.ShuffleEnabled
	if current != "" {
		c.reselect(current)
	}

	logging.Debug("Shuffle enabled: %v", c.playlist.ShuffleEnabled)
	return c.snapshot()
}

// SetVolume clamps v to 0-100 and applies it to the current song's backend.
func (c *Controller) SetVolume(v int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Volume = clampVolume(v)
	if song, ok := c.currentSong(); ok {
		if b, ok := c.backends[song.Kind]; ok {
			c.command(b, "volume", func() error { return b.SetVolume(c.state.Volume) })
		}
	}
	return c.snapshot()
}

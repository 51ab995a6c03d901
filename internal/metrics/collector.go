package metrics

import (
	"time"

	"music-scheduler/internal/logging"
)

// StatsProvider interface for collecting stats
type StatsProvider interface {
	GetStats() Stats
}

// DBMetricsUpdater refreshes connection pool gauges.
type DBMetricsUpdater interface {
	UpdateDBMetrics()
}

// Stats holds the current playlist, schedule and playback figures.
type Stats struct {
	VideoSongs      int
	AudioSongs      int
	Schedules       int
	ActiveSchedules int
	Playing         bool
	Volume          int
}

// Collector periodically collects and updates metrics
type Collector struct {
	statsProvider StatsProvider
	dbUpdater     DBMetricsUpdater
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector. dbUpdater may be nil.
func NewCollector(provider StatsProvider, dbUpdater DBMetricsUpdater, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		dbUpdater:     dbUpdater,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.dbUpdater != nil {
		c.dbUpdater.UpdateDBMetrics()
	}

	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	PlaylistSongs.WithLabelValues("external-video").Set(float64(stats.VideoSongs))
	PlaylistSongs.WithLabelValues("local-audio").Set(float64(stats.AudioSongs))
	SchedulesTotal.Set(float64(stats.Schedules))
	SchedulesActive.Set(float64(stats.ActiveSchedules))
	PlaybackVolume.Set(float64(stats.Volume))
	if stats.Playing {
		PlaybackPlaying.Set(1)
	} else {
		PlaybackPlaying.Set(0)
	}

	logging.Debug("Metrics collected: songs=%d, schedules=%d (active %d), playing=%v",
		stats.VideoSongs+stats.AudioSongs, stats.Schedules, stats.ActiveSchedules, stats.Playing)
}

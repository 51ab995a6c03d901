package handlers

import (
	"context"
	"time"

	"music-scheduler/internal/player"
	"music-scheduler/internal/remote"
	"music-scheduler/internal/uploads"
)

// DefaultMaxUploadBytes bounds multipart uploads when Config leaves it unset.
const DefaultMaxUploadBytes = 200 << 20

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config tunes the handlers.
type Config struct {
	MaxUploadBytes int64
	// Location is the zone schedule windows are read in.
	Location *time.Location
}

// Handlers serves the API on top of one player controller.
type Handlers struct {
	player    *player.Controller
	uploads   *uploads.Store
	hub       *remote.Hub
	db        Pinger
	maxUpload int64
	location  *time.Location
	startTime time.Time
	now       func() time.Time
}

// New creates the API handlers. db may be nil, in which case readiness only
// reflects the process being up.
func New(ctrl *player.Controller, store *uploads.Store, hub *remote.Hub, db Pinger, cfg Config) *Handlers {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &Handlers{
		player:    ctrl,
		uploads:   store,
		hub:       hub,
		db:        db,
		maxUpload: maxUpload,
		location:  loc,
		startTime: time.Now(),
		now:       time.Now,
	}
}

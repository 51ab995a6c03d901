package player

import "errors"

// User-facing errors, shown as-is by the web UI.
var (
	ErrNoValidURLs   = errors.New("No valid YouTube URLs found") //nolint:staticcheck // shown verbatim to users
	ErrEmptyPlaylist = errors.New("No songs in playlist")        //nolint:staticcheck // shown verbatim to users
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrSongNotFound     = errors.New("song not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// Package playlist holds the song model and the ordered playlist.
//
// A Song is a tagged variant over its playback strategy: external-video songs
// carry a YouTube video ID and the link they were added from, local-audio
// songs carry a handle into the uploads store. Code that drives a media
// backend switches on Kind.
//
// A Playlist keeps the canonical insertion order plus a shuffled view of the
// same songs. Exactly one of the two is active, selected by ShuffleEnabled.
// The shuffled view is always regenerated as a whole, never patched in place,
// except for single additions, which are appended to both views.
package playlist

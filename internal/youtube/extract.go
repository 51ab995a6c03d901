package youtube

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidURL is reported to users when a single link cannot be recognised.
var ErrInvalidURL = errors.New("Invalid YouTube URL") //nolint:staticcheck // shown verbatim to users

// First match wins; every capture is exactly one video ID.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?(?:.*&)?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/v/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractVideoID returns the video ID carried by input, or false if input is
// not a recognised link or bare ID.
func ExtractVideoID(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(trimmed); len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// WatchURL returns the canonical watch link for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ThumbnailURL returns the medium quality thumbnail for a video ID.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/mqdefault.jpg"
}

// PlaceholderTitle is used whenever a real title cannot be fetched.
func PlaceholderTitle(videoID string) string {
	return "External Video (" + videoID + ")"
}

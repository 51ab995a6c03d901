// Package uploads stores audio files added from the browser and hands out
// the handles that local-audio songs refer to.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"music-scheduler/internal/filesystem"
	"music-scheduler/internal/logging"
	"music-scheduler/internal/metrics"
	"music-scheduler/internal/playlist"
)

var (
	// ErrNoAudioFiles means none of the uploaded files declared an audio/* type.
	ErrNoAudioFiles = errors.New("no audio files in upload")
	// ErrInvalidHandle is returned for handles this store could not have issued.
	ErrInvalidHandle = errors.New("invalid audio handle")
)

var (
	extPattern    = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)
	handlePattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}(\.[a-z0-9]{1,8})?$`)
)

// Store keeps uploaded audio in a single directory.
type Store struct {
	dir   string
	retry filesystem.RetryConfig
}

// New creates the upload directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Store{dir: dir, retry: filesystem.DefaultRetryConfig()}, nil
}

// Dir returns the upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// IsAudio reports whether a declared media type is playable audio.
func IsAudio(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "audio/")
}

// ValidHandle reports whether handle has the shape Save produces.
func ValidHandle(handle string) bool {
	return handlePattern.MatchString(handle)
}

// Save stores every audio file and returns a local-audio song for each.
// Other files are skipped. If any write fails, the files already written
// by this call are removed and nothing is returned.
func (s *Store) Save(files []*multipart.FileHeader) ([]playlist.Song, error) {
	var songs []playlist.Song

	for _, fh := range files {
		if !IsAudio(fh.Header.Get("Content-Type")) {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
			logging.Debug("Skipping %q: not audio (%s)", fh.Filename, fh.Header.Get("Content-Type"))
			continue
		}

		handle, err := s.write(fh)
		if err != nil {
			metrics.UploadsTotal.WithLabelValues("error").Inc()
			for _, saved := range songs {
				_ = s.Release(saved.AudioHandle)
			}
			return nil, fmt.Errorf("saving %q: %w", fh.Filename, err)
		}

		metrics.UploadsTotal.WithLabelValues("accepted").Inc()
		songs = append(songs, playlist.NewAudioSong(handle, playlist.TitleFromFilename(fh.Filename)))
	}

	if len(songs) == 0 {
		return nil, ErrNoAudioFiles
	}
	return songs, nil
}

func (s *Store) write(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	handle := uuid.NewString() + ext
	path := filepath.Join(s.dir, handle)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	logging.Debug("Stored %q as %s (%d bytes)", fh.Filename, handle, fh.Size)
	return handle, nil
}

// Open opens the file behind handle for reading.
func (s *Store) Open(handle string) (*os.File, error) {
	if !ValidHandle(handle) {
		return nil, ErrInvalidHandle
	}
	return filesystem.OpenWithRetry(filepath.Join(s.dir, handle), s.retry)
}

// Release deletes the file behind handle. A file that is already gone is not an error.
func (s *Store) Release(handle string) error {
	if !ValidHandle(handle) {
		return ErrInvalidHandle
	}
	if err := filesystem.RemoveWithRetry(filepath.Join(s.dir, handle), s.retry); err != nil {
		return fmt.Errorf("releasing %s: %w", handle, err)
	}
	logging.Debug("Released %s", handle)
	return nil
}

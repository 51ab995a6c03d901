// Package client talks to a running music scheduler over its HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"music-scheduler/internal/handlers"
	"music-scheduler/internal/player"
	"music-scheduler/internal/playlist"
)

// DefaultServer is used when no server address is given.
const DefaultServer = "http://localhost:8080"

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return e.Message
}

// Client is a thin wrapper over the scheduler API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultServer
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	if in == nil {
		return c.do(ctx, method, path, http.NoBody, "", out)
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json", out)
}

// Songs returns the playlist.
func (c *Client) Songs(ctx context.Context) (player.Library, error) {
	var lib player.Library
	err := c.doJSON(ctx, http.MethodGet, "/api/songs", nil, &lib)
	return lib, err
}

// AddSong adds one YouTube link.
func (c *Client) AddSong(ctx context.Context, link string) (playlist.Song, error) {
	var song playlist.Song
	err := c.doJSON(ctx, http.MethodPost, "/api/songs", map[string]string{"url": link}, &song)
	return song, err
}

// AddBulk adds every YouTube link in newline-separated text.
func (c *Client) AddBulk(ctx context.Context, text string) (handlers.SongsResponse, error) {
	var resp handlers.SongsResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/songs/bulk", map[string]string{"urls": text}, &resp)
	return resp, err
}

// Upload sends local audio files. The content type is taken from each
// file's extension.
func (c *Client) Upload(ctx context.Context, paths []string) (handlers.SongsResponse, error) {
	var resp handlers.SongsResponse

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, path := range paths {
		if err := addFilePart(mw, path); err != nil {
			return resp, err
		}
	}
	if err := mw.Close(); err != nil {
		return resp, fmt.Errorf("finishing upload: %w", err)
	}

	err := c.do(ctx, http.MethodPost, "/api/songs/upload", &buf, mw.FormDataContentType(), &resp)
	return resp, err
}

func addFilePart(mw *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	contentType := ContentType(path)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, filepath.Base(path)))
	h.Set("Content-Type", contentType)
	pw, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("adding %s: %w", path, err)
	}
	if _, err := io.Copy(pw, f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// audioTypes covers extensions the mime package only knows when the host
// ships a mime.types file.
var audioTypes = map[string]string{
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".mp3":  "audio/mpeg",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".wav":  "audio/wav",
	".weba": "audio/webm",
}

// ContentType guesses the media type of path from its extension.
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := audioTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// RemoveSong deletes a song by id.
func (c *Client) RemoveSong(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/songs/"+url.PathEscape(id), nil, nil)
}

// Player returns the playback state.
func (c *Client) Player(ctx context.Context) (player.Snapshot, error) {
	var snap player.Snapshot
	err := c.doJSON(ctx, http.MethodGet, "/api/player", nil, &snap)
	return snap, err
}

func (c *Client) playerAction(ctx context.Context, action string) (player.Snapshot, error) {
	var snap player.Snapshot
	err := c.doJSON(ctx, http.MethodPost, "/api/player/"+action, nil, &snap)
	return snap, err
}

// Toggle pauses or resumes playback.
func (c *Client) Toggle(ctx context.Context) (player.Snapshot, error) {
	return c.playerAction(ctx, "toggle")
}

// Next skips forward.
func (c *Client) Next(ctx context.Context) (player.Snapshot, error) {
	return c.playerAction(ctx, "next")
}

// Previous skips back.
func (c *Client) Previous(ctx context.Context) (player.Snapshot, error) {
	return c.playerAction(ctx, "previous")
}

// Shuffle toggles shuffled order.
func (c *Client) Shuffle(ctx context.Context) (player.Snapshot, error) {
	return c.playerAction(ctx, "shuffle")
}

// PlayIndex jumps to a position in the active order.
func (c *Client) PlayIndex(ctx context.Context, index int) (player.Snapshot, error) {
	return c.playerAction(ctx, "play/"+strconv.Itoa(index))
}

// SetVolume sets the volume; the server clamps it to 0-100.
func (c *Client) SetVolume(ctx context.Context, volume int) (player.Snapshot, error) {
	var snap player.Snapshot
	err := c.doJSON(ctx, http.MethodPut, "/api/player/volume", map[string]int{"volume": volume}, &snap)
	return snap, err
}

// ScheduleInput is the editable part of a schedule.
type ScheduleInput struct {
	StartTime   string `json:"startTime"`
	StopTime    string `json:"stopTime"`
	RepeatDaily bool   `json:"repeatDaily"`
}

// Schedules lists all schedules.
func (c *Client) Schedules(ctx context.Context) ([]handlers.ScheduleView, error) {
	var views []handlers.ScheduleView
	err := c.doJSON(ctx, http.MethodGet, "/api/schedules", nil, &views)
	return views, err
}

// CreateSchedule adds a schedule.
func (c *Client) CreateSchedule(ctx context.Context, in ScheduleInput) (handlers.ScheduleView, error) {
	var view handlers.ScheduleView
	err := c.doJSON(ctx, http.MethodPost, "/api/schedules", in, &view)
	return view, err
}

// EditSchedule replaces a schedule's window and repeat flag.
func (c *Client) EditSchedule(ctx context.Context, id string, in ScheduleInput) (handlers.ScheduleView, error) {
	var view handlers.ScheduleView
	err := c.doJSON(ctx, http.MethodPut, "/api/schedules/"+url.PathEscape(id), in, &view)
	return view, err
}

// DeleteSchedule removes a schedule.
func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/schedules/"+url.PathEscape(id), nil, nil)
}

// TestSchedule starts a schedule now.
func (c *Client) TestSchedule(ctx context.Context, id string) (player.Snapshot, error) {
	var snap player.Snapshot
	err := c.doJSON(ctx, http.MethodPost, "/api/schedules/"+url.PathEscape(id)+"/test", nil, &snap)
	return snap, err
}

// StopTest stops a schedule now.
func (c *Client) StopTest(ctx context.Context, id string) (player.Snapshot, error) {
	var snap player.Snapshot
	err := c.doJSON(ctx, http.MethodPost, "/api/schedules/"+url.PathEscape(id)+"/stop", nil, &snap)
	return snap, err
}

// Health returns the server health summary.
func (c *Client) Health(ctx context.Context) (handlers.HealthResponse, error) {
	var health handlers.HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/healthz", nil, &health)
	return health, err
}

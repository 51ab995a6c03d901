package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"music-scheduler/internal/logging"
	"music-scheduler/internal/metrics"
)

// DefaultOEmbedEndpoint is the CORS-friendly oEmbed proxy the browser widget used.
const DefaultOEmbedEndpoint = "https://noembed.com/embed"

// TitleFetcher resolves video titles through an oEmbed endpoint.
type TitleFetcher struct {
	client   *http.Client
	endpoint string
}

type oembedResponse struct {
	Title string `json:"title"`
	Error string `json:"error"`
}

// NewTitleFetcher creates a fetcher. A nil client uses http.DefaultClient;
// there is no timeout of its own, cancellation comes from the caller's context.
func NewTitleFetcher(endpoint string, client *http.Client) *TitleFetcher {
	if endpoint == "" {
		endpoint = DefaultOEmbedEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &TitleFetcher{client: client, endpoint: endpoint}
}

// FetchTitle returns the video title, or PlaceholderTitle on any failure.
func (f *TitleFetcher) FetchTitle(ctx context.Context, videoID string) string {
	title, result := f.lookup(ctx, videoID)
	metrics.TitleLookupsTotal.WithLabelValues(result).Inc()
	if title == "" {
		return PlaceholderTitle(videoID)
	}
	return title
}

func (f *TitleFetcher) lookup(ctx context.Context, videoID string) (string, string) {
	reqURL := f.endpoint + "?url=" + url.QueryEscape(WatchURL(videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		logging.Debug("Failed to build title request for %s: %v", videoID, err)
		return "", "error"
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logging.Debug("Failed to fetch title for %s: %v", videoID, err)
		return "", "error"
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("Title lookup for %s returned status %d", videoID, resp.StatusCode)
		return "", "bad_status"
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logging.Debug("Failed to decode title response for %s: %v", videoID, err)
		return "", "error"
	}
	if body.Title == "" {
		return "", "not_found"
	}
	return body.Title, "success"
}

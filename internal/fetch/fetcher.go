// Package fetch retrieves report text from the internal file-browsing API.
// The browser cannot call that API directly (cross-origin + auth), so both
// the CLI and the web proxy route go through this client.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stalens/internal/config"
	"stalens/internal/model"
)

// ErrNoToken is returned when no bearer credential is configured.
// This is a configuration error, not a transient failure.
var ErrNoToken = errors.New("no upstream token configured (set " + config.TokenEnv + ")")

// Fetcher is an authenticated client for the upstream report source.
type Fetcher struct {
	cfg    config.UpstreamConfig
	client *http.Client
}

// New creates a Fetcher for the given upstream.
func New(cfg config.UpstreamConfig) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Fetch retrieves the report at pathOrURL. A full URL is reduced to the
// path portion after the configured marker segment; a bare path is used
// unchanged. The upstream may answer with JSON in several shapes or with
// plain text; all of them are normalized to the raw report string.
func (f *Fetcher) Fetch(ctx context.Context, pathOrURL string) (string, error) {
	if f.cfg.Token == "" {
		return "", ErrNoToken
	}
	if f.cfg.BaseURL == "" {
		return "", errors.New("no upstream base_url configured")
	}

	path := f.extractPath(pathOrURL)

	url := strings.TrimSuffix(f.cfg.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+f.cfg.Token)
	req.Header.Set("Accept", "application/json, text/plain")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream returned %s for %s", resp.Status, path)
	}

	// The API answers login redirects and bad paths with an HTML page and
	// a 200 status. That is a failure, not report content.
	if isHTML(body) {
		return "", fmt.Errorf("upstream returned an HTML page for %s (auth failure or bad path)", path)
	}

	return decodeBody(body), nil
}

// FetchOrSample is the recover-with-fallback mode: any failure yields the
// built-in sample report instead of an error, so the UI always has
// something to analyze.
func (f *Fetcher) FetchOrSample(ctx context.Context, pathOrURL string) (string, bool) {
	text, err := f.Fetch(ctx, pathOrURL)
	if err != nil {
		return model.SampleReport, false
	}
	return text, true
}

// extractPath reduces a pasted URL to the report path after the marker
// segment. Bare paths pass through unchanged.
func (f *Fetcher) extractPath(pathOrURL string) string {
	if !strings.Contains(pathOrURL, "://") {
		return pathOrURL
	}
	if idx := strings.Index(pathOrURL, f.cfg.Marker); idx != -1 {
		return pathOrURL[idx+len(f.cfg.Marker):]
	}
	return pathOrURL
}

// lineRecord is one element of the API's line-array response shape.
type lineRecord struct {
	Line *string `json:"line"`
}

// decodeBody normalizes the upstream response to plain report text.
// Known JSON shapes: an array of {"line": ...} records (joined with
// newlines), an object with a "content" field, or any other JSON value
// (re-serialized indented so the user can at least read it). Anything
// that is not JSON is already plain text.
func decodeBody(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
		return string(body)
	}

	if strings.HasPrefix(trimmed, "[") {
		var records []lineRecord
		if err := json.Unmarshal(body, &records); err == nil && len(records) > 0 {
			lines := make([]string, len(records))
			for i, r := range records {
				if r.Line != nil {
					lines[i] = *r.Line
				}
			}
			return strings.Join(lines, "\n")
		}
	} else {
		var obj map[string]any
		if err := json.Unmarshal(body, &obj); err == nil {
			if content, ok := obj["content"].(string); ok {
				return content
			}
			if pretty, err := json.MarshalIndent(obj, "", "  "); err == nil {
				return string(pretty)
			}
		}
	}

	return string(body)
}

func isHTML(body []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(body)))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

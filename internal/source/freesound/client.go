package freesound

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"media_explorer/internal/source"
)

const (
	SourceID       = "freesound"
	DefaultBaseURL = "https://freesound.org/apiv2"
	// DefaultSearchPrefix narrows every text search to ambient recordings.
	DefaultSearchPrefix = "ambient"
)

// Config holds audio archive client configuration.
type Config struct {
	BaseURL      string
	APIKey       string
	SearchPrefix string
	Timeout      time.Duration
	// Transport overrides the default round tripper when set.
	Transport http.RoundTripper
}

// Client wraps the Freesound API. Every call carries the API key as the
// token parameter; the key is never checked locally.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	searchPrefix string
	logger       *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	searchPrefix := cfg.SearchPrefix
	if searchPrefix == "" {
		searchPrefix = DefaultSearchPrefix
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		baseURL:      baseURL,
		apiKey:       cfg.APIKey,
		searchPrefix: searchPrefix,
		logger:       logger.With("source", SourceID),
	}
}

// QuerySounds runs a text search scoped by the configured prefix term.
func (c *Client) QuerySounds(ctx context.Context, query string) (*http.Response, error) {
	params := url.Values{}
	params.Set("query", c.searchPrefix+" "+query)
	params.Set("token", c.apiKey)

	return c.get(ctx, fmt.Sprintf("%s/search/text/?%s", c.baseURL, params.Encode()))
}

// GetSound fetches the metadata of one sound.
func (c *Client) GetSound(ctx context.Context, soundID string) (*http.Response, error) {
	params := url.Values{}
	params.Set("token", c.apiKey)

	return c.get(ctx, fmt.Sprintf("%s/sounds/%s?%s", c.baseURL, soundID, params.Encode()))
}

// FetchPreview downloads a playable preview such as config.SoundSrc.
// Preview files are public, so no token is sent.
func (c *Client) FetchPreview(ctx context.Context, previewURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, previewURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", source.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: execute request: %w", SourceID, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &source.StatusError{Code: resp.StatusCode}
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, target string) (*http.Response, error) {
	c.logger.Debug("requesting", "path", redactToken(target))

	resp, err := source.Get(ctx, c.httpClient, target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SourceID, err)
	}
	return resp, nil
}

func redactToken(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return ""
	}
	q := u.Query()
	if q.Has("token") {
		q.Set("token", "REDACTED")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

package nasa

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"media_explorer/internal/source"
)

const SourceID = "nasa"

// Config holds image archive client configuration.
type Config struct {
	BaseURL  string
	ProxyURL string
	Timeout  time.Duration
}

// Client wraps the NASA image archive endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	proxyURL   string
	logger     *slog.Logger
}

// New creates a new image archive client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		proxyURL: cfg.ProxyURL,
		logger:   logger.With("source", SourceID),
	}
}

// SearchImages issues one image search and returns the raw response.
// The query is sent as is; the caller checks the status and decodes the body.
func (c *Client) SearchImages(ctx context.Context, query string) (*http.Response, error) {
	params := url.Values{}
	params.Set("media_type", "image")
	params.Set("q", query)

	target := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	return c.get(ctx, target)
}

// GetImage fetches the asset manifest for id.
func (c *Client) GetImage(ctx context.Context, id string) (*http.Response, error) {
	target := fmt.Sprintf("%s/asset/%s", c.baseURL, id)
	return c.get(ctx, target)
}

func (c *Client) get(ctx context.Context, target string) (*http.Response, error) {
	reqURL := source.ProxiedURL(c.proxyURL, target)
	c.logger.Debug("requesting", "url", reqURL)

	resp, err := source.Get(ctx, c.httpClient, reqURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SourceID, err)
	}
	return resp, nil
}

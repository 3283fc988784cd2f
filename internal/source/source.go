// Package source holds what the archive clients share: the error kinds
// returned when a raw response is decoded, and the request plumbing.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrUnexpectedStatus is returned when the archive answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedResponse is returned when a body does not match the declared shape.
	ErrMalformedResponse = errors.New("malformed response")
)

const UserAgent = "MediaExplorer/1.0"

// ProxiedURL prefixes target with proxy. An empty proxy leaves target alone.
func ProxiedURL(proxy, target string) string {
	if proxy == "" {
		return target
	}
	return strings.TrimRight(proxy, "/") + "/" + target
}

// Get issues a single GET and hands back the unparsed response.
func Get(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	return resp, nil
}

// DecodeJSON closes resp.Body after checking the status and decoding into v.
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %v", ErrMalformedResponse, err)
	}

	return nil
}

// StatusError carries the status code of a rejected response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatus, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

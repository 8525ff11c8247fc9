package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultHealthTimeout  = 4 * time.Second
	DefaultRequestTimeout = 8 * time.Second
)

// HTTPClient talks to the HR backend over its JSON API. With no endpoint
// configured every call returns an empty result without touching the network.
type HTTPClient struct {
	baseURL        string
	settingsURL    func() string
	http           *http.Client
	healthTimeout  time.Duration
	requestTimeout time.Duration
	now            func() time.Time
}

type Option func(*HTTPClient)

// WithSettingsURL sets the source of the user-editable endpoint. It is
// consulted on every call, only when no base URL was given.
func WithSettingsURL(fn func() string) Option {
	return func(c *HTTPClient) { c.settingsURL = fn }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithHealthTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.healthTimeout = d
		}
	}
}

func WithRequestTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.requestTimeout = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *HTTPClient) { c.now = now }
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:        baseURL,
		http:           &http.Client{},
		healthTimeout:  DefaultHealthTimeout,
		requestTimeout: DefaultRequestTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint resolves the backend base URL: the configured base URL first,
// then the settings URL. One trailing slash is stripped.
func (c *HTTPClient) Endpoint() string {
	base := strings.TrimSpace(c.baseURL)
	if base == "" && c.settingsURL != nil {
		base = strings.TrimSpace(c.settingsURL())
	}
	return strings.TrimSuffix(base, "/")
}

func (c *HTTPClient) Configured() bool {
	return c.Endpoint() != ""
}

// HealthCheck probes GET /health. Any failure, including a missing endpoint,
// yields false.
func (c *HTTPClient) HealthCheck(ctx context.Context) bool {
	base := c.Endpoint()
	if base == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// do executes one JSON request and decodes the response into out.
// It reports false when there is nothing to decode: no endpoint, 204, or an
// empty / null body.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) (bool, error) {
	base := c.Endpoint()
	if base == "" {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	target := base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return false, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, mapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, mapError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	data = bytes.TrimSpace(data)
	if resp.StatusCode == http.StatusNoContent || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return false, nil
	}
	if out == nil {
		return true, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	return true, nil
}

func setParam(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

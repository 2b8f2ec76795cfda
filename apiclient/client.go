package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Response carries everything a scenario asserts on: status, elapsed
// time and the raw body.
type Response struct {
	StatusCode int
	Duration   time.Duration
	Body       []byte
}

// Client issues GET requests with query parameters and headers against
// a configured endpoint.
type Client struct {
	http *http.Client
}

// New creates a Client with a sane timeout.
func New() *Client {
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Get performs a GET against endpoint with the given query parameters
// and headers. The error is non-nil only for transport-level failures;
// HTTP status interpretation is left to the caller.
func (c *Client) Get(ctx context.Context, endpoint string, params, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", endpoint, err)
	}

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", endpoint, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body from %s: %w", endpoint, err)
	}

	return &Response{
		StatusCode: res.StatusCode,
		Duration:   duration,
		Body:       body,
	}, nil
}

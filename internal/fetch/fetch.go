// Package fetch performs the JSON GET requests made by the network checks.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxBody caps how much of a response is decoded. DoH and reputation
// answers are a few hundred bytes.
const maxBody = 1 << 20

// Doer allows http.Client to be mocked for tests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %q: unexpected %d: %s", e.URL, e.StatusCode, e.Status)
}

// Client performs GET requests and decodes JSON responses.
type Client struct {
	doer      Doer
	userAgent string
}

// New returns a Client using doer, or http.DefaultClient when doer is nil.
func New(doer Doer, userAgent string) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{doer: doer, userAgent: userAgent}
}

// GetJSON requests uri and decodes the response body into v. Requests
// carry no cookies or credentials; header is added as given.
func (c *Client) GetJSON(ctx context.Context, uri string, header http.Header, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return fmt.Errorf("GET for %q: %w", uri, err)
	}
	for k, vals := range header {
		for _, val := range vals {
			req.Header.Add(k, val)
		}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("network error while fetching %q: %w", uri, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: uri, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %q: %w", uri, err)
	}
	return nil
}

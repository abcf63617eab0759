// Package reputation asks a disposable-domain service whether a domain
// hands out throwaway mailboxes.
package reputation

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/optimode/emailverify/internal/fetch"
)

// Verdict is the service's answer. Disposable is nil when the field was
// missing or null.
type Verdict struct {
	Disposable *bool `json:"disposable"`
}

// Client queries a reputation endpoint of the form <base>/<domain>.
type Client struct {
	base   *url.URL
	client *fetch.Client
}

// New returns a Client for base, e.g. https://open.kickbox.com/v1/disposable.
func New(base string, client *fetch.Client) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parsing reputation endpoint: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("reputation endpoint %q: scheme must be http or https", base)
	}
	return &Client{base: u, client: client}, nil
}

// LookupURL returns the request URL for domain, which is appended as a
// single escaped path segment.
func (c *Client) LookupURL(domain string) string {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + domain
	u.RawPath = strings.TrimSuffix(c.base.EscapedPath(), "/") + "/" + url.PathEscape(domain)
	return u.String()
}

// Lookup fetches the verdict for domain.
func (c *Client) Lookup(ctx context.Context, domain string) (*Verdict, error) {
	var v Verdict
	if err := c.client.GetJSON(ctx, c.LookupURL(domain), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Package doh is a client for the JSON flavour of DNS-over-HTTPS
// (application/dns-json), as served by Cloudflare and Google.
package doh

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/miekg/dns"

	"github.com/optimode/emailverify/internal/fetch"
)

// ContentType is the media type of JSON DoH responses.
const ContentType = "application/dns-json"

// Question is an entry of the question section.
type Question struct {
	Name string `json:"name"`
	Type uint16 `json:"type"`
}

// RR is a resource record of the answer or authority section. Data is
// the record's presentation form, e.g. "10 mail.example.com." for MX.
type RR struct {
	Name string `json:"name"`
	Type uint16 `json:"type"`
	TTL  uint32 `json:"TTL"`
	Data string `json:"data"`
}

// Response is a DoH JSON answer. Answer is nil when the section was
// absent or null, and non-nil but empty when the server sent [].
type Response struct {
	Status    int        `json:"Status"`
	TC        bool       `json:"TC"`
	RD        bool       `json:"RD"`
	RA        bool       `json:"RA"`
	AD        bool       `json:"AD"`
	CD        bool       `json:"CD"`
	Question  []Question `json:"Question"`
	Answer    []RR       `json:"Answer"`
	Authority []RR       `json:"Authority"`
	Comment   string     `json:"Comment,omitempty"`
}

// Rcode returns the textual name of Status, e.g. NXDOMAIN.
func (r *Response) Rcode() string {
	if s, ok := dns.RcodeToString[r.Status]; ok {
		return s
	}
	return fmt.Sprintf("RCODE%d", r.Status)
}

// MX returns the MX records found in the answer section, ordered by
// preference. Records whose data does not parse are skipped.
func (r *Response) MX() []*dns.MX {
	var out []*dns.MX
	for _, rr := range r.Answer {
		if rr.Type != dns.TypeMX {
			continue
		}
		name := rr.Name
		if name == "" {
			name = "."
		}
		parsed, err := dns.NewRR(fmt.Sprintf("%s %d IN MX %s", dns.Fqdn(name), rr.TTL, rr.Data))
		if err != nil {
			continue
		}
		if mx, ok := parsed.(*dns.MX); ok {
			out = append(out, mx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Preference < out[j].Preference
	})
	return out
}

// Client queries a DoH endpoint.
type Client struct {
	endpoint *url.URL
	http     *fetch.Client
}

// New returns a Client for endpoint, e.g. https://cloudflare-dns.com/dns-query.
func New(endpoint string, hc *fetch.Client) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing DoH endpoint: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("DoH endpoint %q: scheme must be http or https", endpoint)
	}
	return &Client{endpoint: u, http: hc}, nil
}

// QueryURL returns the request URL for an MX query on name. DNSSEC data
// is requested (do=true) and validation is left enabled (cd=false).
func (c *Client) QueryURL(name string, qtype uint16) string {
	u := *c.endpoint
	q := u.Query()
	q.Set("type", dns.TypeToString[qtype])
	q.Set("do", "true")
	q.Set("cd", "false")
	q.Set("name", strings.TrimSuffix(name, "."))
	u.RawQuery = q.Encode()
	return u.String()
}

// LookupMX queries MX records for domain. The DNS status is not
// interpreted; callers decide what a non-zero Status means.
func (c *Client) LookupMX(ctx context.Context, domain string) (*Response, error) {
	var resp Response
	header := http.Header{"Accept": {ContentType}}
	if err := c.http.GetJSON(ctx, c.QueryURL(domain, dns.TypeMX), header, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package emailverify

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// DefaultDoHEndpoint is Cloudflare's JSON DNS-over-HTTPS endpoint.
	DefaultDoHEndpoint = "https://cloudflare-dns.com/dns-query"

	// DefaultReputationEndpoint is Kickbox's open disposable-domain API.
	// The domain is appended as the last path segment.
	DefaultReputationEndpoint = "https://open.kickbox.com/v1/disposable"

	// DefaultCheckTimeout is the time limit for each check.
	DefaultCheckTimeout = 1000 * time.Millisecond

	// DefaultUserAgent is sent with every outgoing request.
	DefaultUserAgent = "emailverify"

	usageFormat = `emailverify can be configured via the environment. The following environment
variables can be used:

KEY	DEFAULT	REQUIRED	DESCRIPTION
{{range .}}{{usage_key .}}	{{usage_default .}}	{{usage_required .}}	{{usage_description .}}
{{end}}`
)

// Options configures a Verifier. Zero values are replaced by defaults.
type Options struct {
	// DoHEndpoint is the DNS-over-HTTPS endpoint queried for MX records.
	// It must speak the JSON API (application/dns-json).
	DoHEndpoint string `envconfig:"DOH_ENDPOINT" default:"https://cloudflare-dns.com/dns-query" desc:"DNS-over-HTTPS JSON endpoint"`
	// ReputationEndpoint is the base URL of the disposable-domain service.
	ReputationEndpoint string `envconfig:"REPUTATION_ENDPOINT" default:"https://open.kickbox.com/v1/disposable" desc:"Disposable-domain service base URL"`
	// CheckTimeout bounds each check. Default: 1s
	CheckTimeout time.Duration `envconfig:"CHECK_TIMEOUT" default:"1s" desc:"Time limit per check"`
	// UserAgent is sent with DoH and reputation requests.
	UserAgent string `envconfig:"USER_AGENT" default:"emailverify" desc:"User-Agent for outgoing requests"`
}

// DefaultOptions returns the options New uses when none are given.
func DefaultOptions() Options {
	return Options{
		DoHEndpoint:        DefaultDoHEndpoint,
		ReputationEndpoint: DefaultReputationEndpoint,
		CheckTimeout:       DefaultCheckTimeout,
		UserAgent:          DefaultUserAgent,
	}
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.DoHEndpoint == "" {
		o.DoHEndpoint = def.DoHEndpoint
	}
	if o.ReputationEndpoint == "" {
		o.ReputationEndpoint = def.ReputationEndpoint
	}
	if o.CheckTimeout == 0 {
		o.CheckTimeout = def.CheckTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = def.UserAgent
	}
	return o
}

// LoadOptions reads Options from environment variables named
// <prefix>_DOH_ENDPOINT, <prefix>_REPUTATION_ENDPOINT, <prefix>_CHECK_TIMEOUT
// and <prefix>_USER_AGENT. Verifiers never read the environment on their
// own; callers opt in by passing the result to New.
func LoadOptions(prefix string) (Options, error) {
	o := Options{}
	if err := envconfig.Process(prefix, &o); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return o, nil
}

// Usage writes a table of the environment variables LoadOptions reads.
func Usage(prefix string, w io.Writer) error {
	tabs := tabwriter.NewWriter(w, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(prefix, &Options{}, tabs, usageFormat); err != nil {
		return err
	}
	return tabs.Flush()
}

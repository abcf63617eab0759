package parse

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

const atSymbol = "@"

// Structural failures reported by Guard.
var (
	ErrNotString  = errors.New("address is not a string")
	ErrEmpty      = errors.New("address is empty")
	ErrLeadingAt  = errors.New("address starts with @")
	ErrTrailingAt = errors.New("address ends with @")
	ErrAtCount    = errors.New("address must contain exactly one @")
	ErrEmptyPart  = errors.New("address has an empty local or domain part")
)

// Candidate is an address that passed the structural guard.
type Candidate struct {
	Raw         string // the input exactly as given
	Address     string // Raw with surrounding whitespace removed
	Local       string // the part before @, untrimmed
	Domain      string // the part after @, trimmed
	DomainASCII string // lower-case ASCII/Punycode form of Domain, for network lookups
}

// Guard performs the cheap structural checks every address must pass
// before any other check runs. It accepts string and *string; any other
// value, including nil, fails with ErrNotString.
func Guard(v any) (Candidate, error) {
	var raw string
	switch s := v.(type) {
	case string:
		raw = s
	case *string:
		if s == nil {
			return Candidate{}, ErrNotString
		}
		raw = *s
	default:
		return Candidate{}, fmt.Errorf("%w: got %T", ErrNotString, v)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Candidate{}, ErrEmpty
	}

	// The @ position checks run on the raw input, so " @x" passes here and
	// is left to the split below.
	if strings.HasPrefix(raw, atSymbol) {
		return Candidate{}, ErrLeadingAt
	}
	if strings.HasSuffix(raw, atSymbol) {
		return Candidate{}, ErrTrailingAt
	}

	parts := strings.Split(raw, atSymbol)
	if len(parts) != 2 {
		return Candidate{}, fmt.Errorf("%w: found %d", ErrAtCount, len(parts)-1)
	}
	local, domain := parts[0], parts[1]
	if strings.TrimSpace(local) == "" || strings.TrimSpace(domain) == "" {
		return Candidate{}, ErrEmptyPart
	}

	domain = strings.TrimSpace(domain)
	return Candidate{
		Raw:         raw,
		Address:     trimmed,
		Local:       local,
		Domain:      domain,
		DomainASCII: lookupDomain(domain),
	}, nil
}

// lookupDomain returns the form of domain to send to DNS and reputation
// services. Names IDNA rejects are passed through lower-cased; the
// services decide what to make of them.
func lookupDomain(domain string) string {
	d := strings.ToLower(domain)
	a, err := idna.Lookup.ToASCII(d)
	if err != nil || a == "" {
		return d
	}
	return a
}

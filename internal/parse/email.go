// Package parse holds the address handling shared by the checks: the
// structural guard that gates every verification, and the mailbox parser
// the syntax check is built on.
package parse

import (
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/net/idna"
)

// ErrUnparseable is returned by ParseEmail for input that is not a single
// addr-spec.
var ErrUnparseable = errors.New("not a parseable email address")

// Email is a parsed addr-spec.
type Email struct {
	Address       string // the trimmed input
	Local         string // the part before @, unquoted
	Quoted        bool   // the local part was written in quoted-string form
	Domain        string // ASCII/Punycode form
	DomainUnicode string // Unicode form, for display and error messages
}

// ParseEmail parses address as an addr-spec, with support for
// internationalized local parts (RFC 6531) and domain names (IDNA2008).
func ParseEmail(address string) (Email, error) {
	address = strings.TrimSpace(address)

	addr, err := mail.ParseAddress(address)
	if err != nil {
		addr, err = mail.ParseAddress("<" + address + ">")
	}
	if err != nil {
		// net/mail rejects UTF-8 local parts; split by hand.
		return parseManual(address)
	}
	// net/mail accepts display names; only a bare addr-spec is wanted here.
	if addr.Name != "" {
		return Email{}, ErrUnparseable
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 1 || at == len(addr.Address)-1 {
		return Email{}, ErrUnparseable
	}
	return build(address, addr.Address[:at], addr.Address[at+1:])
}

func parseManual(address string) (Email, error) {
	at := strings.LastIndex(address, "@")
	if at < 1 || at >= len(address)-1 {
		return Email{}, ErrUnparseable
	}
	return build(address, address[:at], address[at+1:])
}

func build(address, local, domain string) (Email, error) {
	ascii, unicode, ok := convertDomain(strings.ToLower(domain))
	if !ok {
		return Email{}, ErrUnparseable
	}
	rawLocal := local
	if at := strings.LastIndex(address, "@"); at >= 0 {
		rawLocal = address[:at]
	}
	return Email{
		Address:       address,
		Local:         local,
		Quoted:        strings.HasPrefix(rawLocal, `"`) && strings.HasSuffix(rawLocal, `"`),
		Domain:        ascii,
		DomainUnicode: unicode,
	}, nil
}

// convertDomain returns the ASCII and Unicode forms of domain. ok is false
// when a non-ASCII domain fails IDNA2008 validation.
func convertDomain(domain string) (ascii, unicode string, ok bool) {
	if !isASCII(domain) {
		a, err := idna.Lookup.ToASCII(domain)
		if err != nil {
			return "", "", false
		}
		return a, domain, true
	}

	// Existing Punycode (xn--mnchen-3ya.de) decodes to its display form.
	u, err := idna.Display.ToUnicode(domain)
	if err != nil {
		u = domain
	}
	return domain, u, true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

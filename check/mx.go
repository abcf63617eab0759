package check

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/optimode/emailverify/internal/doh"
	"github.com/optimode/emailverify/internal/parse"
	"github.com/optimode/emailverify/types"
)

var (
	// ErrDNSStatus is returned when the DoH answer carries a non-zero
	// DNS status (NXDOMAIN, SERVFAIL, ...).
	ErrDNSStatus = errors.New("bad status code from DNS query")

	// ErrNoAnswer is returned when the DoH answer has no Answer section at
	// all. An absent section is not read as "no MX records".
	ErrNoAnswer = errors.New("no answer returned")
)

// MXResolver looks up MX records over DNS-over-HTTPS.
type MXResolver interface {
	LookupMX(ctx context.Context, domain string) (*doh.Response, error)
}

// MXChecker verifies that the address's domain publishes MX records.
type MXChecker struct {
	resolver MXResolver
}

func NewMXChecker(resolver MXResolver) *MXChecker {
	return &MXChecker{resolver: resolver}
}

func (c *MXChecker) Level() types.CheckLevel { return types.LevelMX }

func (c *MXChecker) Check(ctx context.Context, cand parse.Candidate) (types.CheckResult, error) {
	level := types.LevelMX

	resp, err := c.resolver.LookupMX(ctx, cand.DomainASCII)
	if err != nil {
		return types.CheckResult{Level: level}, err
	}
	if resp == nil {
		return types.CheckResult{Level: level}, ErrNoAnswer
	}
	if resp.Status != 0 {
		return types.CheckResult{Level: level}, fmt.Errorf("%w: %d (%s)", ErrDNSStatus, resp.Status, resp.Rcode())
	}
	if resp.Answer == nil {
		return types.CheckResult{Level: level}, ErrNoAnswer
	}
	if len(resp.Answer) == 0 {
		return types.CheckResult{Level: level, Passed: false, Details: "no MX records found"}, nil
	}

	res := types.CheckResult{
		Level:   level,
		Passed:  true,
		Details: fmt.Sprintf("%d answer record(s) found", len(resp.Answer)),
	}
	if mx := resp.MX(); len(mx) > 0 {
		res.MXHost = strings.TrimSuffix(mx[0].Mx, ".")
	}
	return res, nil
}

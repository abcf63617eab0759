package check

import (
	"context"
	"errors"

	"github.com/optimode/emailverify/internal/parse"
	"github.com/optimode/emailverify/internal/reputation"
	"github.com/optimode/emailverify/types"
)

// ErrNoVerdict is returned when the reputation service answered without a
// disposable flag.
var ErrNoVerdict = errors.New("no result returned")

// ReputationSource reports whether a domain is disposable.
type ReputationSource interface {
	Lookup(ctx context.Context, domain string) (*reputation.Verdict, error)
}

// BurnerChecker fails addresses whose domain is known to hand out
// disposable mailboxes.
type BurnerChecker struct {
	source ReputationSource
}

func NewBurnerChecker(source ReputationSource) *BurnerChecker {
	return &BurnerChecker{source: source}
}

func (c *BurnerChecker) Level() types.CheckLevel { return types.LevelBurner }

func (c *BurnerChecker) Check(ctx context.Context, cand parse.Candidate) (types.CheckResult, error) {
	level := types.LevelBurner

	v, err := c.source.Lookup(ctx, cand.DomainASCII)
	if err != nil {
		return types.CheckResult{Level: level}, err
	}
	if v == nil || v.Disposable == nil {
		return types.CheckResult{Level: level}, ErrNoVerdict
	}
	if *v.Disposable {
		return types.CheckResult{Level: level, Passed: false, Details: "disposable email domain detected"}, nil
	}
	return types.CheckResult{Level: level, Passed: true, Details: "domain is not disposable"}, nil
}

package emailverify

import (
	"errors"

	"github.com/optimode/emailverify/check"
	"github.com/optimode/emailverify/internal/failopen"
	"github.com/optimode/emailverify/internal/parse"
)

var (
	// ErrInvalidOptions is returned by Inspect and VerifyMany when the
	// Verifier was built with an unusable endpoint or a negative timeout.
	ErrInvalidOptions = errors.New("emailverify: invalid options")
)

// Structural failures, re-exported so callers can match Result.Err with
// errors.Is.
var (
	ErrNotString  = parse.ErrNotString
	ErrEmpty      = parse.ErrEmpty
	ErrLeadingAt  = parse.ErrLeadingAt
	ErrTrailingAt = parse.ErrTrailingAt
	ErrAtCount    = parse.ErrAtCount
	ErrEmptyPart  = parse.ErrEmptyPart
)

// Check failures that trigger the fail-open policy.
var (
	ErrTimeout   = failopen.ErrTimeout
	ErrDNSStatus = check.ErrDNSStatus
	ErrNoAnswer  = check.ErrNoAnswer
	ErrNoVerdict = check.ErrNoVerdict
)

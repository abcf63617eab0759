// Package emailverify decides whether a user-supplied string is a usable,
// deliverable email address. It runs four checks:
//
//   - structure: non-empty, exactly one "@", non-empty local and domain parts
//   - syntax: RFC 5321/5322 with internationalized addresses
//   - mx: the domain publishes MX records, asked over DNS-over-HTTPS
//   - burner: the domain is not a disposable-mailbox provider
//
// A structural failure rejects the address immediately. The other three
// checks run concurrently, each under a time limit, and the address is
// accepted unless one of them definitively fails. Checks that error or
// time out count as passes, so an outage of the DNS or reputation service
// never blocks a user.
//
// Basic usage:
//
//	ok := emailverify.New().Verify(ctx, "user@example.com")
//
// With details:
//
//	result, err := emailverify.New(emailverify.Options{
//	    CheckTimeout: 500 * time.Millisecond,
//	}).Inspect(ctx, "user@example.com")
package emailverify

import (
	"context"

	"github.com/optimode/emailverify/types"
)

// CheckResult is a re-export from the types package so that consumers
// don't need to import the types package directly.
type CheckResult = types.CheckResult

// CheckLevel is a re-export.
type CheckLevel = types.CheckLevel

// Level constants re-exported.
const (
	LevelStructure = types.LevelStructure
	LevelSyntax    = types.LevelSyntax
	LevelMX        = types.LevelMX
	LevelBurner    = types.LevelBurner
	LevelCompile   = types.LevelCompile
)

var std = New()

// Verify reports whether address is acceptable, using a Verifier with
// default options.
func Verify(ctx context.Context, address any) bool {
	return std.Verify(ctx, address)
}

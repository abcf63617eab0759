// Package check contains the individual checks emailverify runs against a
// structurally sound address. Each checker reports a definitive verdict in
// its CheckResult, or an error when it could not reach one; turning errors
// into passes is left to the caller. These types can be used directly, but
// the recommended approach is the Verifier in
// github.com/optimode/emailverify.
package check

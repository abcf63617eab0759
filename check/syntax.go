package check

import (
	"context"
	"strings"
	"unicode"

	"github.com/optimode/emailverify/internal/parse"
	"github.com/optimode/emailverify/types"
)

// SyntaxChecker validates email syntax according to RFC 5321/5322
// with RFC 6531 (SMTPUTF8) and IDNA2008 internationalization support.
type SyntaxChecker struct{}

func NewSyntaxChecker() *SyntaxChecker {
	return &SyntaxChecker{}
}

func (c *SyntaxChecker) Level() types.CheckLevel { return types.LevelSyntax }

// Check never returns an error; syntax is decidable locally.
func (c *SyntaxChecker) Check(_ context.Context, cand parse.Candidate) (types.CheckResult, error) {
	if msg := Valid(cand.Address); msg != "" {
		return types.CheckResult{Level: types.LevelSyntax, Passed: false, Details: msg}, nil
	}
	return types.CheckResult{Level: types.LevelSyntax, Passed: true, Details: "syntax ok"}, nil
}

// Valid reports why address is not a valid email address, or "" if it is.
func Valid(address string) string {
	email, err := parse.ParseEmail(address)
	if err != nil {
		if strings.TrimSpace(address) == "" {
			return "empty email address"
		}
		return "invalid email syntax"
	}

	// Length checks (RFC 5321)
	if len(email.Address) > 254 {
		return "email address exceeds 254 characters"
	}
	if len(email.Local) > 64 {
		return "local part exceeds 64 characters"
	}

	// Quoted local parts allow any printable character.
	if !email.Quoted {
		if msg := validateLocal(email.Local); msg != "" {
			return msg
		}
	}

	// Unicode form for readable messages; IDNA2008 ran during parsing.
	return validateDomain(email.DomainUnicode)
}

// validateLocal validates the local part.
// Supports RFC 5321 ASCII characters and RFC 6531 (SMTPUTF8) Unicode characters.
// Returns error text, or "" if ok.
func validateLocal(local string) string {
	if local == "" {
		return "local part is empty"
	}

	// RFC 5321 ASCII special characters (besides alphanumeric)
	asciiSpecial := "!#$%&'*+/=?^_`{|}~-."

	for _, ch := range local {
		if ch > 127 {
			if unicode.IsControl(ch) {
				return "local part contains control character"
			}
			continue
		}
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			continue
		}
		if !strings.ContainsRune(asciiSpecial, ch) {
			return "local part contains invalid character: " + string(ch)
		}
	}

	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return "local part cannot start or end with a dot"
	}
	if strings.Contains(local, "..") {
		return "local part cannot contain consecutive dots"
	}
	return ""
}

// validateDomain validates the domain part (Unicode form).
// Returns error text, or "" if ok.
func validateDomain(domain string) string {
	if domain == "" {
		return "domain is empty"
	}

	// IP literal: [127.0.0.1] - accept but don't validate deeply
	if strings.HasPrefix(domain, "[") && strings.HasSuffix(domain, "]") {
		return ""
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return "domain must have at least two labels"
	}

	for _, label := range labels {
		if label == "" {
			return "domain contains empty label (consecutive dots)"
		}
		if len(label) > 63 {
			return "domain label exceeds 63 characters"
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return "domain label cannot start or end with a hyphen"
		}
		for _, ch := range label {
			if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '-' {
				return "domain label contains invalid character: " + string(ch)
			}
		}
	}

	tld := labels[len(labels)-1]
	if strings.IndexFunc(tld, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		return "TLD cannot be all digits"
	}
	return ""
}

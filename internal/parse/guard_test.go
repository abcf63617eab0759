package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/emailverify/internal/parse"
)

func TestGuard_Rejects(t *testing.T) {
	var nilStr *string
	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{"nil", nil, parse.ErrNotString},
		{"nil string pointer", nilStr, parse.ErrNotString},
		{"int", 42, parse.ErrNotString},
		{"bytes", []byte("user@example.com"), parse.ErrNotString},
		{"empty", "", parse.ErrEmpty},
		{"whitespace", " \t\n", parse.ErrEmpty},
		{"leading at", "@example.com", parse.ErrLeadingAt},
		{"trailing at", "user@", parse.ErrTrailingAt},
		{"no at", "userexample.com", parse.ErrAtCount},
		{"double at", "a@@b.com", parse.ErrAtCount},
		{"two ats", "a@b@c.com", parse.ErrAtCount},
		{"blank local", "  @example.com", parse.ErrEmptyPart},
		{"blank domain", "user@  ", parse.ErrEmptyPart},
		{"trailing at then space", "user@example.com@ ", parse.ErrAtCount},
		{"trailing at after domain", "user@example.com@", parse.ErrTrailingAt},
		{"leading space then at", " @example.com", parse.ErrEmptyPart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse.Guard(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGuard_Accepts(t *testing.T) {
	c, err := parse.Guard("  plainuser@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "  plainuser@Example.COM ", c.Raw)
	assert.Equal(t, "plainuser@Example.COM", c.Address)
	assert.Equal(t, "  plainuser", c.Local)
	assert.Equal(t, "Example.COM", c.Domain)
	assert.Equal(t, "example.com", c.DomainASCII)
}

func TestGuard_StringPointer(t *testing.T) {
	s := "user@example.com"
	c, err := parse.Guard(&s)
	require.NoError(t, err)
	assert.Equal(t, "example.com", c.DomainASCII)
}

func TestGuard_IDNDomain(t *testing.T) {
	c, err := parse.Guard("user@münchen.de")
	require.NoError(t, err)
	assert.Equal(t, "münchen.de", c.Domain)
	assert.Equal(t, "xn--mnchen-3ya.de", c.DomainASCII)
}

func TestGuard_DoesNotJudgeSyntax(t *testing.T) {
	// Structurally fine, syntactically not; that is the syntax check's call.
	c, err := parse.Guard("user..name@exa mple")
	require.NoError(t, err)
	assert.Equal(t, "exa mple", c.Domain)
}

package emailverify_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/emailverify"
)

func TestDefaultOptions(t *testing.T) {
	o := emailverify.DefaultOptions()
	assert.Equal(t, emailverify.DefaultDoHEndpoint, o.DoHEndpoint)
	assert.Equal(t, emailverify.DefaultReputationEndpoint, o.ReputationEndpoint)
	assert.Equal(t, time.Second, o.CheckTimeout)
	assert.Equal(t, emailverify.DefaultUserAgent, o.UserAgent)
}

func TestLoadOptions(t *testing.T) {
	t.Setenv("EV_DOH_ENDPOINT", "https://dns.example/dns-query")
	t.Setenv("EV_CHECK_TIMEOUT", "250ms")

	o, err := emailverify.LoadOptions("ev")
	require.NoError(t, err)
	assert.Equal(t, "https://dns.example/dns-query", o.DoHEndpoint)
	assert.Equal(t, 250*time.Millisecond, o.CheckTimeout)
	assert.Equal(t, emailverify.DefaultReputationEndpoint, o.ReputationEndpoint, "unset keys take the tag default")
	assert.Equal(t, emailverify.DefaultUserAgent, o.UserAgent)
}

func TestLoadOptions_BadDuration(t *testing.T) {
	t.Setenv("EV_CHECK_TIMEOUT", "soon")

	_, err := emailverify.LoadOptions("ev")
	assert.ErrorIs(t, err, emailverify.ErrInvalidOptions)
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, emailverify.Usage("ev", &buf))

	out := buf.String()
	for _, key := range []string{"EV_DOH_ENDPOINT", "EV_REPUTATION_ENDPOINT", "EV_CHECK_TIMEOUT", "EV_USER_AGENT"} {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "Time limit per check")
}

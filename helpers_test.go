package emailverify_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/optimode/emailverify"
)

// upstream fakes both the DoH resolver and the reputation service.
type upstream struct {
	*httptest.Server

	mu         sync.Mutex
	mx         map[string]string // domain -> DoH JSON body
	mxStatus   map[string]int    // domain -> HTTP status
	disposable map[string]string // domain -> reputation JSON body
	delay      map[string]time.Duration

	requests atomic.Int64
}

const (
	mxAnswer  = `{"Status":0,"Answer":[{"name":"%s.","type":15,"TTL":300,"data":"10 mail.%s."}]}`
	mxEmpty   = `{"Status":0,"Answer":[]}`
	notBurner = `{"disposable":false}`
	burner    = `{"disposable":true}`
	nxdomain  = `{"Status":3}`
	noAnswer  = `{"Status":0}`
	noVerdict = `{"other":true}`
)

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{
		mx:         map[string]string{},
		mxStatus:   map[string]int{},
		disposable: map[string]string{},
		delay:      map[string]time.Duration{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/dns-query", func(w http.ResponseWriter, r *http.Request) {
		u.requests.Add(1)
		name := r.URL.Query().Get("name")
		u.wait(r, "mx:"+name)
		u.mu.Lock()
		body, ok := u.mx[name]
		status := u.mxStatus[name]
		u.mu.Unlock()
		if status != 0 {
			w.WriteHeader(status)
			return
		}
		if !ok {
			body = strings.ReplaceAll(mxAnswer, "%s", name)
		}
		w.Header().Set("Content-Type", "application/dns-json")
		_, _ = w.Write([]byte(body))
	})
	mux.HandleFunc("/v1/disposable/", func(w http.ResponseWriter, r *http.Request) {
		u.requests.Add(1)
		name := strings.TrimPrefix(r.URL.Path, "/v1/disposable/")
		u.wait(r, "burner:"+name)
		u.mu.Lock()
		body, ok := u.disposable[name]
		u.mu.Unlock()
		if !ok {
			body = notBurner
		}
		_, _ = w.Write([]byte(body))
	})
	u.Server = httptest.NewServer(mux)
	t.Cleanup(u.Close)
	return u
}

// wait sleeps for the configured delay or until the client goes away.
func (u *upstream) wait(r *http.Request, key string) {
	u.mu.Lock()
	d := u.delay[key]
	u.mu.Unlock()
	if d == 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-r.Context().Done():
	}
}

func (u *upstream) set(m map[string]string, key, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	m[key] = body
}

func (u *upstream) options(timeout time.Duration) emailverify.Options {
	return emailverify.Options{
		DoHEndpoint:        u.URL + "/dns-query",
		ReputationEndpoint: u.URL + "/v1/disposable",
		CheckTimeout:       timeout,
	}
}

func (u *upstream) verifier(t *testing.T, timeout time.Duration) *emailverify.Verifier {
	t.Helper()
	return emailverify.New(u.options(timeout)).
		WithHTTPClient(u.Client()).
		WithLogger(zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel))
}

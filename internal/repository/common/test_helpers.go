package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// FakeUpstream is an httptest-backed stand-in for the YouTube Data API.
// It records every request it receives.
type FakeUpstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewFakeUpstream starts a fake API server that dispatches to handler
func NewFakeUpstream(t *testing.T, handler http.HandlerFunc) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(context.Background()))
		f.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(f.Server.Close)

	return f
}

// Service returns a YouTube client pointed at the fake server
func (f *FakeUpstream) Service(t *testing.T) *youtube.Service {
	t.Helper()

	service, err := youtube.NewService(context.Background(),
		option.WithEndpoint(f.Server.URL+"/"),
		option.WithHTTPClient(f.Server.Client()),
	)
	require.NoError(t, err)

	return service
}

// Requests returns the requests received so far
func (f *FakeUpstream) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

// RespondJSON writes body with the given status as an API response
func RespondJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPIServer fakes the API: /api/protected requires the given access
// token; /api/customers/refresh exchanges the refresh token for a new pair
// when refreshOK is true.
func newAPIServer(t *testing.T, validAccess *atomic.Value, refreshOK bool, refreshCalls, protectedCalls *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/protected", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(protectedCalls, 1)
		if r.Header.Get("Authorization") != "Bearer "+validAccess.Load().(string) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/customers/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(refreshCalls, 1)
		if !refreshOK {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		validAccess.Store("access-2")
		json.NewEncoder(w).Encode(map[string]any{
			"tokens": Tokens{AccessToken: "access-2", RefreshToken: "refresh-2"},
		})
	})
	return httptest.NewServer(mux)
}

func TestDoNoRefreshNeeded(t *testing.T) {
	var valid atomic.Value
	valid.Store("access-1")
	var refreshCalls, protectedCalls int32
	srv := newAPIServer(t, &valid, true, &refreshCalls, &protectedCalls)
	defer srv.Close()

	c := New(srv.URL, Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/protected", nil)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, refreshCalls)
	assert.EqualValues(t, 1, protectedCalls)
}

func TestDoRefreshesOnceOn401(t *testing.T) {
	var valid atomic.Value
	valid.Store("access-2-only")
	var refreshCalls, protectedCalls int32
	srv := newAPIServer(t, &valid, true, &refreshCalls, &protectedCalls)
	defer srv.Close()

	// The server only accepts access-2, which refresh hands out.
	valid.Store("stale")
	c := New(srv.URL, Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/protected", nil)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, refreshCalls)
	assert.EqualValues(t, 2, protectedCalls, "original request retried exactly once")
	assert.Equal(t, "access-2", c.Tokens().AccessToken, "rotated pair kept for later calls")
}

func TestDoFailedRefreshSurfacesSessionExpired(t *testing.T) {
	var valid atomic.Value
	valid.Store("something-else")
	var refreshCalls, protectedCalls int32
	srv := newAPIServer(t, &valid, false, &refreshCalls, &protectedCalls)
	defer srv.Close()

	c := New(srv.URL, Tokens{AccessToken: "stale", RefreshToken: "stale-refresh"})
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/protected", nil)

	_, err := c.Do(req)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.EqualValues(t, 1, refreshCalls)
	assert.EqualValues(t, 1, protectedCalls, "no retry without a fresh token")
}

func TestDoSecond401AfterRefreshIsTerminal(t *testing.T) {
	var valid atomic.Value
	valid.Store("never-matches")
	var refreshCalls, protectedCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/protected", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&protectedCalls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/api/customers/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		json.NewEncoder(w).Encode(map[string]any{
			"tokens": Tokens{AccessToken: "access-2", RefreshToken: "refresh-2"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/protected", nil)

	_, err := c.Do(req)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.EqualValues(t, 1, refreshCalls, "refresh attempted once, never looped")
	assert.EqualValues(t, 2, protectedCalls, "exactly one retry")
}

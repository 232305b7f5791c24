package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topnotch/storefront/pkg/config"
	"go.uber.org/goleak"
)

func TestRateLimiter_Middleware(t *testing.T) {
	defer goleak.VerifyNone(t)

	// given
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, config.RateLimitConfig{
		Enabled:  true,
		Requests: 2,
		Window:   time.Minute,
		Cleanup:  time.Minute,
	}, discardLogger)
	handler := rl.Middleware(func(r *http.Request) bool {
		return r.URL.Path == "/api/v1/health"
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	call := func(path, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	// when
	first := call("/api/v1/books", "10.0.0.1")
	second := call("/api/v1/books", "10.0.0.1")
	third := call("/api/v1/books", "10.0.0.1")
	otherClient := call("/api/v1/books", "10.0.0.2")
	health := call("/api/v1/health", "10.0.0.1")

	// then
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, http.StatusTooManyRequests, third.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(third.Body.Bytes(), &body))
	assert.Equal(t, "Too many requests", body["error"])
	assert.Equal(t, float64(30), body["retryAfter"])
	assert.Equal(t, "30", third.Header().Get("Retry-After"))
	assert.Equal(t, http.StatusOK, otherClient.Code)
	assert.Equal(t, http.StatusOK, health.Code)

	cancel()
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	defer goleak.VerifyNone(t)

	// given
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, config.RateLimitConfig{Requests: 1, Window: time.Minute, Cleanup: time.Hour}, discardLogger)
	start := time.Now()
	rl.now = func() time.Time { return start }
	rl.reserve("10.0.0.1")

	// when
	rl.now = func() time.Time { return start.Add(2 * time.Minute) }
	rl.evict()

	// then
	rl.mu.Lock()
	assert.Empty(t, rl.clients)
	rl.mu.Unlock()

	cancel()
}

func TestRealIP(t *testing.T) {
	testCases := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{"x-real-ip", map[string]string{"X-Real-IP": "1.1.1.1"}, "9.9.9.9:1", "1.1.1.1"},
		{"x-forwarded-for", map[string]string{"X-Forwarded-For": "2.2.2.2, 3.3.3.3"}, "9.9.9.9:1", "2.2.2.2"},
		{"remote addr", nil, "9.9.9.9:1", "9.9.9.9"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tc.expected, RealIP(req))
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiterAllowsBurstThenBlocks(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d within burst", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "burst exhausted")
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 1)

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"), "a throttled client must not affect others")
}

func TestRateLimiterCleanupEvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 1)
	rl.lifetime = time.Nanosecond

	rl.Allow("1.2.3.4")
	time.Sleep(time.Millisecond)
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.clients)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"x-forwarded-for single", map[string]string{"X-Forwarded-For": "9.9.9.9"}, "10.0.0.1:1234", "9.9.9.9"},
		{"x-forwarded-for chain takes first", map[string]string{"X-Forwarded-For": "9.9.9.9, 10.0.0.2"}, "10.0.0.1:1234", "9.9.9.9"},
		{"x-real-ip", map[string]string{"X-Real-IP": "8.8.8.8"}, "10.0.0.1:1234", "8.8.8.8"},
		{"remote addr fallback", nil, "10.0.0.1:1234", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(r))
		})
	}
}

func TestRateLimitAuthMiddleware(t *testing.T) {
	handler := RateLimitAuth()(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "5.5.5.5:9999"
		handler(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i+1)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "5.5.5.5:9999"
	handler(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

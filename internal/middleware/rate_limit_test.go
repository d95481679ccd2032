package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 5) // 10 per minute, burst of 5
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should be allowed", i+1)
	}

	assert.False(t, rl.Allow("10.0.0.1"), "request 6 should be rate limited")
}

func TestRateLimiter_DifferentClients(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 3)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		require.True(t, rl.Allow("10.0.0.1"))
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Second client still has its full burst
	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.2"), "client 2 request %d should be allowed", i+1)
	}
}

func TestRateLimiter_GetStateUnknownClient(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 7)
	defer rl.Stop()

	remaining, reset := rl.GetState("unknown")
	assert.Equal(t, 7, remaining)
	assert.True(t, reset.After(time.Now()))
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 2)
	defer rl.Stop()

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")
	require.Equal(t, 2, rl.Len())

	rl.evictIdle(time.Now())
	assert.Equal(t, 2, rl.Len(), "fresh limiters are kept")

	rl.evictIdle(time.Now().Add(LimiterTTL + time.Second))
	assert.Equal(t, 0, rl.Len())
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter()
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func newRateLimitedRequest(e *echo.Echo, ip string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	req.RemoteAddr = ip + ":40000"
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimitMiddleware_LimitsPerClient(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 2)
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	mw := RateLimitMiddleware(rl)

	for i := 0; i < 2; i++ {
		c, rec := newRateLimitedRequest(e, "192.0.2.10")
		require.NoError(t, mw(handler)(c))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
	}

	c, rec := newRateLimitedRequest(e, "192.0.2.10")
	require.NoError(t, mw(handler)(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	var problem problemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, errorTypeRateLimit, problem.Type)
	assert.Equal(t, http.StatusTooManyRequests, problem.Status)
	assert.Equal(t, "/api/v1/summary", problem.Instance)

	// A different client is unaffected
	c, rec = newRateLimitedRequest(e, "192.0.2.11")
	require.NoError(t, mw(handler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/todo", http.NoBody)
	req.RemoteAddr = addr
	return req
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	t.Parallel()

	handler := middleware.RateLimit(config.RateLimitConfig{}, discardLogger())(okHandler())

	for i := range 50 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestFrom("10.0.0.1:1234"))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, rec.Code, http.StatusOK)
		}
	}
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}
	handler := middleware.RateLimit(cfg, testLogger(&buf))(okHandler())

	for i := range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestFrom("10.0.0.1:1234"))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, rec.Code, http.StatusOK)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom("10.0.0.1:5678"))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
	body := decodeAPIError(t, rec)
	if body.HTTPStatus != "TOO_MANY_REQUESTS" {
		t.Errorf("httpStatus = %q, want %q", body.HTTPStatus, "TOO_MANY_REQUESTS")
	}
	if !bytes.Contains(buf.Bytes(), []byte("rate limit exceeded")) {
		t.Error("log output missing 'rate limit exceeded'")
	}
}

func TestRateLimit_SeparateBucketsPerClient(t *testing.T) {
	t.Parallel()

	cfg := config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	handler := middleware.RateLimit(cfg, discardLogger())(okHandler())

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "[::1]:1"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestFrom(addr))
		if rec.Code != http.StatusOK {
			t.Errorf("first request from %s: status = %d, want %d", addr, rec.Code, http.StatusOK)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestFrom("10.0.0.1:2"))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request from 10.0.0.1: status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}

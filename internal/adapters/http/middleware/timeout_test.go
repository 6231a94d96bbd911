package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
)

func TestTimeout_HandlerCompletesBeforeDeadline(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(1*time.Second, testTranslator())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Custom", "value")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "ok")
	}
	if rec.Header().Get("X-Custom") != "value" {
		t.Errorf("X-Custom header = %q, want %q", rec.Header().Get("X-Custom"), "value")
	}
}

func TestTimeout_HandlerExceedsDeadline(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(50*time.Millisecond, testTranslator())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		// Block until context is canceled.
		<-r.Context().Done()
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slow", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	body := decodeAPIError(t, rec)
	if body.HTTPStatus != "INTERNAL_SERVER_ERROR" || body.CorrelationID == "" {
		t.Errorf("body = %+v, want INTERNAL_SERVER_ERROR with a correlation id", body)
	}
}

func TestTimeout_LateWritesDiscarded(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	writeErr := make(chan error, 1)
	handler := middleware.Timeout(20*time.Millisecond, testTranslator())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, err := w.Write([]byte("too late"))
		writeErr <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", http.NoBody))
	close(release)

	if err := <-writeErr; !errors.Is(err, http.ErrHandlerTimeout) {
		t.Errorf("late Write() error = %v, want %v", err, http.ErrHandlerTimeout)
	}
	if strings.Contains(rec.Body.String(), "too late") {
		t.Errorf("body = %q, want late write discarded", rec.Body.String())
	}
}

func TestTimeout_ContextCarriesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	handler := middleware.Timeout(1*time.Second, testTranslator())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	handler.ServeHTTP(rec, req)

	if !hasDeadline {
		t.Error("context has no deadline, want deadline set by timeout middleware")
	}
}

func TestTimeout_DefaultStatusOnImplicitWrite(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(1*time.Second, testTranslator())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("no explicit status"))
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "no explicit status" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "no explicit status")
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain(
		middleware.Recovery(discardLogger(), testTranslator()),
		middleware.Timeout(time.Second, testTranslator()),
	)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/todo/1", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	body := decodeAPIError(t, rec)
	if body.HTTPStatus != "INTERNAL_SERVER_ERROR" || body.CorrelationID == "" {
		t.Errorf("body = %+v, want INTERNAL_SERVER_ERROR with a correlation id", body)
	}
}

func TestTimeout_RepanicsOnRequestGoroutine(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second, testTranslator())(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if p := recover(); p != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", p)
		}
	}()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
}

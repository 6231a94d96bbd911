package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/messages"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testTranslator() *dto.ErrorTranslator {
	return dto.NewErrorTranslator(messages.MustDefault(), slog.New(slog.DiscardHandler))
}

func validEntry() todo.Entry {
	desc := "Milk, eggs, bread"
	return todo.Entry{
		ID:          1,
		Title:       "Buy groceries",
		Description: &desc,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireFieldError asserts a 400 APIError naming field.
func requireFieldError(t *testing.T, rec *httptest.ResponseRecorder, field string) dto.APIError {
	t.Helper()
	requireStatus(t, rec, http.StatusBadRequest)
	body := decodeJSON[dto.APIError](t, rec)
	for _, item := range body.ValidationErrors {
		if item.FieldName == field {
			return body
		}
	}
	t.Errorf("validationErrors = %+v, want an entry for %q", body.ValidationErrors, field)
	return body
}

package middleware_test

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/platform/messages"
)

func testTranslator() *dto.ErrorTranslator {
	return dto.NewErrorTranslator(messages.MustDefault(), slog.New(slog.DiscardHandler))
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) dto.APIError {
	t.Helper()
	var body dto.APIError
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding ApiError: %v; body = %s", err, rec.Body.String())
	}
	return body
}

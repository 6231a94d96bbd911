package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// APIError is the body of every 4xx and 5xx response.
type APIError struct {
	Message          string                `json:"message"`
	HTTPStatus       string                `json:"httpStatus"`
	ValidationErrors []ValidationErrorItem `json:"validationErrors,omitempty"`
	CorrelationID    string                `json:"correlationId,omitempty"`
}

// ValidationErrorItem is one failing field of a rejected request.
type ValidationErrorItem struct {
	FieldName    string `json:"fieldName"`
	ErrorMessage string `json:"errorMessage"`
}

// NewAPIError builds an APIError for status with a plain message.
func NewAPIError(status int, message string) APIError {
	return APIError{Message: message, HTTPStatus: StatusName(status)}
}

// StatusName returns the upper snake case name of an HTTP status, e.g.
// "NOT_FOUND" for 404.
func StatusName(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(text, "-", "_"), " ", "_"))
}

// WriteAPIError writes body as JSON with the given status.
func WriteAPIError(w http.ResponseWriter, status int, body APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode error response", slog.Any("error", err))
	}
}

// ErrorTranslator turns errors into APIError responses. It is the only place
// where internal failures become client-visible:
//
//   - domain.ErrValidation -> 400 with per-field messages
//   - domain.ErrNotFound   -> 404 with the error's message
//   - anything else        -> 500 with a fresh correlation id, logged
type ErrorTranslator struct {
	messages ports.MessageResolver
	logger   *slog.Logger
}

// NewErrorTranslator creates an ErrorTranslator. logger is used when the
// request context carries no logger.
func NewErrorTranslator(messages ports.MessageResolver, logger *slog.Logger) *ErrorTranslator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ErrorTranslator{messages: messages, logger: logger}
}

// Translate maps err to a status code and response body. Unexpected errors
// are logged with the correlation id returned to the client.
func (t *ErrorTranslator) Translate(ctx context.Context, err error) (int, APIError) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		msg := verr.Message
		if msg == "" {
			msg = MsgValidationFailed
		}
		body := NewAPIError(http.StatusBadRequest, msg)
		body.ValidationErrors = validationItems(verr.Fields)
		return http.StatusBadRequest, body
	}

	if errors.Is(err, domain.ErrValidation) {
		return http.StatusBadRequest, NewAPIError(http.StatusBadRequest, MsgValidationFailed)
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, NewAPIError(http.StatusNotFound, nf.Error())
	}
	if errors.Is(err, domain.ErrNotFound) {
		return http.StatusNotFound, NewAPIError(http.StatusNotFound, err.Error())
	}

	return http.StatusInternalServerError, t.unexpected(ctx, err)
}

// Write translates err and writes the response.
func (t *ErrorTranslator) Write(w http.ResponseWriter, r *http.Request, err error) {
	status, body := t.Translate(r.Context(), err)
	WriteAPIError(w, status, body)
}

func (t *ErrorTranslator) unexpected(ctx context.Context, err error) APIError {
	correlationID := uuid.NewString()

	logging.FromContextOr(ctx, t.logger).ErrorContext(ctx, "unexpected error",
		slog.String("correlation_id", correlationID),
		slog.Any("error", err),
	)

	body := NewAPIError(http.StatusInternalServerError, t.messages.Message(ports.MsgGenericError, correlationID))
	body.CorrelationID = correlationID
	return body
}

func validationItems(fields map[string]string) []ValidationErrorItem {
	items := make([]ValidationErrorItem, 0, len(fields))
	for field, msg := range fields {
		items = append(items, ValidationErrorItem{FieldName: field, ErrorMessage: msg})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].FieldName < items[j].FieldName
	})
	return items
}

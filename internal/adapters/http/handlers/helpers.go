package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// Validation messages for path and query parameters.
const (
	msgNotInteger    = "must be a valid integer"
	msgNegative      = "must be greater than or equal to 0"
	msgPageSizeRange = "must be between 1 and 1000"
	msgSortField     = "must be one of id, title, description, isDone, expiresAt, createdAt, updatedAt"
	msgSortDirection = "must be ASC or DESC"
	msgIDsRequired   = "must contain at least one id"
	msgPageTooLarge  = "must be at most 2147483647"
)

// maxPage keeps page offsets within range of the store's int arithmetic.
const maxPage = math.MaxInt32

// parseID extracts a non-negative int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, paramError(param, msgNotInteger)
	}
	if id < 0 {
		return 0, paramError(param, msgNegative)
	}
	return id, nil
}

// paramError reports a single invalid parameter. The summary message names
// the parameter so clients can act on it without reading the field list.
func paramError(param, msg string) error {
	return &domain.ValidationError{
		Message: param + ": " + msg,
		Fields:  map[string]string{param: msg},
	}
}

// parsePageRequest reads page, pageSize, sortField and sortDirection from the
// query string. Absent parameters take the listing defaults. Every invalid
// parameter is reported.
func parsePageRequest(r *http.Request) (todo.PageRequest, error) {
	req := todo.DefaultPageRequest()
	q := r.URL.Query()
	fields := make(map[string]string)

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields["page"] = msgNotInteger
		case n < 0:
			fields["page"] = msgNegative
		case n > maxPage:
			fields["page"] = msgPageTooLarge
		default:
			req.Page = n
		}
	}

	if raw := q.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields["pageSize"] = msgNotInteger
		case n < 1 || n > todo.MaxPageSize:
			fields["pageSize"] = msgPageSizeRange
		default:
			req.Size = n
		}
	}

	if raw := q.Get("sortField"); raw != "" {
		f := todo.SortField(raw)
		if f.IsValid() {
			req.SortField = f
		} else {
			fields["sortField"] = msgSortField
		}
	}

	if raw := q.Get("sortDirection"); raw != "" {
		d, ok := todo.ParseSortDirection(raw)
		if ok {
			req.Direction = d
		} else {
			fields["sortDirection"] = msgSortDirection
		}
	}

	if len(fields) > 0 {
		return todo.PageRequest{}, &domain.ValidationError{Message: dto.MsgValidationFailed, Fields: fields}
	}
	return req, nil
}

// parseIDs reads the comma-separated ids query parameter. Repeated ids
// parameters are merged.
func parseIDs(r *http.Request) ([]int64, error) {
	var ids []int64
	for _, raw := range r.URL.Query()["ids"] {
		for part := range strings.SplitSeq(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, paramError("ids", msgNotInteger)
			}
			if id < 0 {
				return nil, paramError("ids", msgNegative)
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, paramError("ids", msgIDsRequired)
	}
	return ids, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody strictly decodes the request body into dst. Unknown fields,
// trailing data and oversized bodies are rejected as validation errors.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return bodyError("must contain a single JSON object")
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError

	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &domain.ValidationError{
			Message: dto.MsgValidationFailed,
			Fields:  map[string]string{typeErr.Field: fmt.Sprintf("must be a %s", jsonKind(typeErr.Type.Kind().String()))},
		}
	case errors.As(err, &maxErr):
		return bodyError(fmt.Sprintf("must not exceed %d bytes", maxErr.Limit))
	case errors.Is(err, io.EOF):
		return bodyError("must not be empty")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return &domain.ValidationError{
			Message: dto.MsgValidationFailed,
			Fields:  map[string]string{field: "is not a known field"},
		}
	default:
		return bodyError("is not valid JSON")
	}
}

func bodyError(msg string) error {
	return &domain.ValidationError{
		Message: dto.MsgValidationFailed,
		Fields:  map[string]string{"body": msg},
	}
}

func jsonKind(goKind string) string {
	switch goKind {
	case "string", "ptr":
		return "string"
	case "bool":
		return "boolean"
	case "struct", "map":
		return "JSON object"
	default:
		return goKind
	}
}

// decodeTodoRequest decodes and validates a TodoRequest and maps it to an entry.
func decodeTodoRequest(w http.ResponseWriter, r *http.Request) (*todo.Entry, error) {
	var req dto.TodoRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return dto.ToEntry(&req), nil
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// TodoBasePath is the route prefix of the todo resource.
const TodoBasePath = "/v1/todo"

// TodoHandler handles HTTP requests for todo entry CRUD operations.
// Path, query and body validation happens here; the service only sees
// well-formed input.
type TodoHandler struct {
	service ports.TodoService
	errors  *dto.ErrorTranslator
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(service ports.TodoService, errors *dto.ErrorTranslator) *TodoHandler {
	return &TodoHandler{service: service, errors: errors}
}

// ListTodos handles GET /v1/todo.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	page, err := h.service.GetTodos(r.Context(), req)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPageResponse(page))
}

// GetTodo handles GET /v1/todo/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	entry, err := h.service.GetTodoByID(r.Context(), id)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(entry))
}

// CreateTodo handles POST /v1/todo.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	entry, err := decodeTodoRequest(w, r)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	created, err := h.service.CreateTodo(r.Context(), entry)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	w.Header().Set("Location", TodoBasePath+"/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// UpdateTodo handles PUT /v1/todo/{id}.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	changes, err := decodeTodoRequest(w, r)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	if _, err := h.service.UpdateTodo(r.Context(), id, changes); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTodo handles DELETE /v1/todo/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	if err := h.service.DeleteTodo(r.Context(), id); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTodos handles DELETE /v1/todo?ids=1,2,3. Ids that do not exist are
// ignored.
func (h *TodoHandler) DeleteTodos(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	if _, err := h.service.DeleteTodos(r.Context(), ids); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

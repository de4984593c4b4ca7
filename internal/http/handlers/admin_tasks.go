package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

// AdminTasksHandler manages the kanban board. Moving a card between
// columns is an update with a new status.
type AdminTasksHandler struct {
	state  *studio.State
	logger *logging.Logger
}

// NewAdminTasksHandler creates the task board handler.
func NewAdminTasksHandler(state *studio.State, logger *logging.Logger) *AdminTasksHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminTasksHandler{state: state, logger: logger}
}

// Routes returns a chi router with the task admin routes.
func (h *AdminTasksHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{taskID}", h.Update)
	r.Delete("/{taskID}", h.Delete)
	return r
}

// List returns the board.
// GET /admin/tasks
func (h *AdminTasksHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.state.Tasks()); err != nil {
		h.logger.Error("failed to encode tasks", "error", err)
	}
}

// Create adds a card, defaulting to the todo column.
// POST /admin/tasks
func (h *AdminTasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var task studio.KanbanTask
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if task.Title == "" {
		http.Error(w, `{"error": "title required"}`, http.StatusBadRequest)
		return
	}
	if task.ID == "" {
		task.ID = "k-" + uuid.NewString()
	}
	if task.Status == "" {
		task.Status = studio.TaskTodo
	}

	if err := h.state.AddTask(r.Context(), task); err != nil {
		h.logger.Error("failed to add task", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(task)
}

// Update replaces a card, moving it between columns.
// PUT /admin/tasks/{taskID}
func (h *AdminTasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	var task studio.KanbanTask
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	task.ID = taskID

	if err := h.state.UpdateTask(r.Context(), task); err != nil {
		if errors.Is(err, studio.ErrTaskNotFound) {
			http.Error(w, `{"error": "task not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update task", "task_id", taskID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(task)
}

// Delete removes a card.
// DELETE /admin/tasks/{taskID}
func (h *AdminTasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	if err := h.state.RemoveTask(r.Context(), taskID); err != nil {
		if errors.Is(err, studio.ErrTaskNotFound) {
			http.Error(w, `{"error": "task not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to remove task", "task_id", taskID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

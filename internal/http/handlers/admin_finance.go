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

// AdminFinanceHandler manages the income/expense ledger.
type AdminFinanceHandler struct {
	state  *studio.State
	logger *logging.Logger
}

// NewAdminFinanceHandler creates the finance ledger handler.
func NewAdminFinanceHandler(state *studio.State, logger *logging.Logger) *AdminFinanceHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminFinanceHandler{state: state, logger: logger}
}

// Routes returns a chi router with the finance admin routes.
func (h *AdminFinanceHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{recordID}", h.Update)
	r.Delete("/{recordID}", h.Delete)
	return r
}

// List returns the full ledger.
// GET /admin/finances
func (h *AdminFinanceHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.state.Finances()); err != nil {
		h.logger.Error("failed to encode finances", "error", err)
	}
}

// Create adds a ledger entry.
// POST /admin/finances
func (h *AdminFinanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record studio.FinanceRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if record.Type != studio.FinanceIncome && record.Type != studio.FinanceExpense {
		http.Error(w, `{"error": "type must be income or expense"}`, http.StatusBadRequest)
		return
	}
	if record.ID == "" {
		record.ID = "f-" + uuid.NewString()
	}

	if err := h.state.AddFinanceRecord(r.Context(), record); err != nil {
		h.logger.Error("failed to add finance record", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(record)
}

// Update replaces a ledger entry.
// PUT /admin/finances/{recordID}
func (h *AdminFinanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	var record studio.FinanceRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	record.ID = recordID

	if err := h.state.UpdateFinanceRecord(r.Context(), record); err != nil {
		if errors.Is(err, studio.ErrFinanceRecordNotFound) {
			http.Error(w, `{"error": "finance record not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update finance record", "record_id", recordID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(record)
}

// Delete removes a ledger entry.
// DELETE /admin/finances/{recordID}
func (h *AdminFinanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	if err := h.state.RemoveFinanceRecord(r.Context(), recordID); err != nil {
		if errors.Is(err, studio.ErrFinanceRecordNotFound) {
			http.Error(w, `{"error": "finance record not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to remove finance record", "record_id", recordID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

// AdminSettingsHandler manages the booking defaults applied to new online
// bookings.
type AdminSettingsHandler struct {
	state  *studio.State
	logger *logging.Logger
}

// NewAdminSettingsHandler creates the settings handler.
func NewAdminSettingsHandler(state *studio.State, logger *logging.Logger) *AdminSettingsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminSettingsHandler{state: state, logger: logger}
}

// Routes returns a chi router with the settings admin routes.
func (h *AdminSettingsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Put("/", h.Update)
	return r
}

// Get returns the current defaults.
// GET /admin/settings
func (h *AdminSettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.state.Settings()); err != nil {
		h.logger.Error("failed to encode settings", "error", err)
	}
}

// Update replaces the defaults. Existing appointments keep the price and
// duration they were booked with.
// PUT /admin/settings
func (h *AdminSettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings studio.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if settings.DefaultPrice <= 0 || settings.DefaultDuration <= 0 {
		http.Error(w, `{"error": "defaultPrice and defaultDuration must be positive"}`, http.StatusBadRequest)
		return
	}

	if err := h.state.UpdateSettings(r.Context(), settings); err != nil {
		h.logger.Error("failed to update settings", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(settings)
}

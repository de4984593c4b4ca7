// Package handlers contains the authenticated back-office HTTP handlers:
// dashboard stats and CRUD over the studio's collections.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trigueirabraids/studio-platform/internal/copy"
	"github.com/trigueirabraids/studio-platform/internal/observability/metrics"
	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

// AdminClientsHandler manages the client roster and drafts retention
// messages for it.
type AdminClientsHandler struct {
	state       *studio.State
	drafter     copy.Drafter
	copyMetrics *metrics.CopyMetrics
	logger      *logging.Logger
}

// NewAdminClientsHandler creates the client management handler.
func NewAdminClientsHandler(state *studio.State, drafter copy.Drafter, copyMetrics *metrics.CopyMetrics, logger *logging.Logger) *AdminClientsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminClientsHandler{
		state:       state,
		drafter:     drafter,
		copyMetrics: copyMetrics,
		logger:      logger,
	}
}

// Routes returns a chi router with the client admin routes.
func (h *AdminClientsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{clientID}", h.Update)
	r.Delete("/{clientID}", h.Delete)
	r.Post("/{clientID}/retention-message", h.DraftRetention)
	return r
}

// List returns the full roster.
// GET /admin/clients
func (h *AdminClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.state.Clients()); err != nil {
		h.logger.Error("failed to encode clients", "error", err)
	}
}

// Create adds a client. The admin path does not dedup by email; that rule
// belongs to the public booking flow only.
// POST /admin/clients
func (h *AdminClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var client studio.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if client.Name == "" {
		http.Error(w, `{"error": "name required"}`, http.StatusBadRequest)
		return
	}
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if client.Status == "" {
		client.Status = studio.ClientActive
	}

	if err := h.state.AddClient(r.Context(), client); err != nil {
		h.logger.Error("failed to add client", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(client)
}

// Update replaces a client record.
// PUT /admin/clients/{clientID}
func (h *AdminClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	var client studio.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	client.ID = clientID

	if err := h.state.UpdateClient(r.Context(), client); err != nil {
		if errors.Is(err, studio.ErrClientNotFound) {
			http.Error(w, `{"error": "client not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update client", "client_id", clientID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(client)
}

// Delete removes a client. Appointments keep their dangling reference;
// there is no cascade.
// DELETE /admin/clients/{clientID}
func (h *AdminClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	if err := h.state.RemoveClient(r.Context(), clientID); err != nil {
		if errors.Is(err, studio.ErrClientNotFound) {
			http.Error(w, `{"error": "client not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to remove client", "client_id", clientID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DraftRetention drafts a win-back message for a client. The copy layer
// falls back to a template, so this only fails when the client is unknown.
// POST /admin/clients/{clientID}/retention-message
func (h *AdminClientsHandler) DraftRetention(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	client, ok := h.state.ClientByID(clientID)
	if !ok {
		http.Error(w, `{"error": "client not found"}`, http.StatusNotFound)
		return
	}

	start := time.Now()
	message, err := h.drafter.DraftRetention(r.Context(), copy.RetentionRequest{
		ClientName:      client.Name,
		LastSessionDate: client.LastSessionDate,
	})
	h.copyMetrics.ObserveDraftLatency("retention", time.Since(start).Seconds())
	if err != nil {
		h.copyMetrics.ObserveDraft("retention", "error")
		h.logger.Error("retention draft failed", "client_id", clientID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	h.copyMetrics.ObserveDraft("retention", "drafter")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

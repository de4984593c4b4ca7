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

// AdminScheduleHandler manages the appointment book. Admin writes are
// free-form: the operator may double-book or backdate on purpose, so the
// public availability rule is not enforced here.
type AdminScheduleHandler struct {
	state  *studio.State
	logger *logging.Logger
}

// NewAdminScheduleHandler creates the schedule management handler.
func NewAdminScheduleHandler(state *studio.State, logger *logging.Logger) *AdminScheduleHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminScheduleHandler{state: state, logger: logger}
}

// Routes returns a chi router with the schedule admin routes.
func (h *AdminScheduleHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{appointmentID}", h.Update)
	r.Delete("/{appointmentID}", h.Delete)
	return r
}

// List returns the appointment book, narrowed to one date when a ?date=
// query is present.
// GET /admin/schedule?date=2006-01-02
func (h *AdminScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments := h.state.Appointments()
	if date := r.URL.Query().Get("date"); date != "" {
		filtered := make([]studio.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if a.Date == date {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(appointments); err != nil {
		h.logger.Error("failed to encode appointments", "error", err)
	}
}

// Create adds an appointment. Omitted price or duration fall back to the
// current booking defaults, the same way the public booking path prices a
// session.
// POST /admin/schedule
func (h *AdminScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var appointment studio.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if appointment.Date == "" || appointment.Time == "" {
		http.Error(w, `{"error": "date and time required"}`, http.StatusBadRequest)
		return
	}
	if appointment.ID == "" {
		appointment.ID = "app-" + uuid.NewString()
	}
	if appointment.Status == "" {
		appointment.Status = studio.AppointmentScheduled
	}
	settings := h.state.Settings()
	if appointment.Price <= 0 {
		appointment.Price = settings.DefaultPrice
	}
	if appointment.Duration <= 0 {
		appointment.Duration = settings.DefaultDuration
	}

	if err := h.state.AddAppointment(r.Context(), appointment); err != nil {
		h.logger.Error("failed to add appointment", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(appointment)
}

// Update replaces an appointment, covering status flips (completed,
// cancelled) and reschedules.
// PUT /admin/schedule/{appointmentID}
func (h *AdminScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	var appointment studio.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	appointment.ID = appointmentID

	if err := h.state.UpdateAppointment(r.Context(), appointment); err != nil {
		if errors.Is(err, studio.ErrAppointmentNotFound) {
			http.Error(w, `{"error": "appointment not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update appointment", "appointment_id", appointmentID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(appointment)
}

// Delete removes an appointment.
// DELETE /admin/schedule/{appointmentID}
func (h *AdminScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	if err := h.state.RemoveAppointment(r.Context(), appointmentID); err != nil {
		if errors.Is(err, studio.ErrAppointmentNotFound) {
			http.Error(w, `{"error": "appointment not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to remove appointment", "appointment_id", appointmentID, "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

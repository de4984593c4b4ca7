package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/trigueirabraids/studio-platform/internal/copy"
	"github.com/trigueirabraids/studio-platform/internal/observability/metrics"
	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

// Handler provides the public booking endpoints used by the widget.
type Handler struct {
	service     *Service
	drafter     copy.Drafter
	template    *copy.TemplateDrafter
	copyMetrics *metrics.CopyMetrics
	logger      *logging.Logger
}

// NewHandler creates the public booking HTTP handler. The template drafter
// is the last line of defense: whatever the primary drafter does, the
// booking response carries a confirmation message.
func NewHandler(service *Service, drafter copy.Drafter, template *copy.TemplateDrafter, copyMetrics *metrics.CopyMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service:     service,
		drafter:     drafter,
		template:    template,
		copyMetrics: copyMetrics,
		logger:      logger,
	}
}

// Routes returns a chi router with the public booking routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/availability", h.GetAvailability)
	r.Post("/bookings", h.CreateBooking)
	return r
}

// GetAvailability lists the open slots for a date.
// GET /api/availability?date=2006-01-02
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, `{"error": "date required"}`, http.StatusBadRequest)
		return
	}

	slots, err := h.service.AvailableSlots(date)
	if err != nil {
		http.Error(w, `{"error": "invalid date"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"date": date, "slots": slots}); err != nil {
		h.logger.Error("failed to encode availability", "date", date, "error", err)
	}
}

// BookingResponse is what the widget shows after a successful submission.
type BookingResponse struct {
	Appointment studio.Appointment `json:"appointment"`
	Message     string             `json:"message"`
}

// CreateBooking registers an online booking and drafts the confirmation
// message. Drafting is best-effort and never fails the booking.
// POST /api/bookings
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	appointment, err := h.service.Book(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, studio.ErrSlotTaken):
			http.Error(w, `{"error": "slot already taken"}`, http.StatusConflict)
		case errors.Is(err, ErrSlotInPast):
			http.Error(w, `{"error": "slot is in the past"}`, http.StatusUnprocessableEntity)
		case errors.Is(err, ErrSlotNotOffered):
			http.Error(w, `{"error": "time is not an offered slot"}`, http.StatusUnprocessableEntity)
		case errors.Is(err, ErrInvalidRequest):
			http.Error(w, `{"error": "name, email and a valid date are required"}`, http.StatusBadRequest)
		default:
			h.logger.Error("booking failed", "error", err)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}

	message := h.draftConfirmation(r, req, appointment)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(BookingResponse{Appointment: appointment, Message: message}); err != nil {
		h.logger.Error("failed to encode booking response", "error", err)
	}
}

func (h *Handler) draftConfirmation(r *http.Request, req Request, appointment studio.Appointment) string {
	draftReq := copy.ConfirmationRequest{
		ClientName: req.Name,
		Date:       appointment.Date,
		Time:       appointment.Time,
	}

	if h.drafter != nil {
		start := time.Now()
		message, err := h.drafter.DraftConfirmation(r.Context(), draftReq)
		h.copyMetrics.ObserveDraftLatency("confirmation", time.Since(start).Seconds())
		if err == nil {
			h.copyMetrics.ObserveDraft("confirmation", "drafter")
			return message
		}
		h.logger.Warn("confirmation draft failed, using template", "error", err)
	}

	if h.template == nil {
		return ""
	}
	message, err := h.template.DraftConfirmation(r.Context(), draftReq)
	if err != nil {
		return ""
	}
	h.copyMetrics.ObserveDraft("confirmation", "template")
	return message
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/trigueirabraids/studio-platform/internal/booking"
	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

const draftLatencyMetric = "studio_copy_draft_latency_seconds"

// AdminDashboardHandler aggregates the numbers the back office opens on:
// roster size, today's schedule, the month's ledger and drafting latency.
type AdminDashboardHandler struct {
	state    *studio.State
	clock    *booking.Clock
	gatherer prometheus.Gatherer
	logger   *logging.Logger
}

// NewAdminDashboardHandler creates the dashboard handler. The gatherer is
// the registry the copy metrics are registered on; nil skips the latency
// snapshot.
func NewAdminDashboardHandler(state *studio.State, clock *booking.Clock, gatherer prometheus.Gatherer, logger *logging.Logger) *AdminDashboardHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminDashboardHandler{
		state:    state,
		clock:    clock,
		gatherer: gatherer,
		logger:   logger,
	}
}

// Routes returns a chi router with the dashboard route.
func (h *AdminDashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetStats)
	return r
}

// DashboardStats is the aggregate view returned to the back office.
type DashboardStats struct {
	TotalClients         int     `json:"totalClients"`
	PendingClients       int     `json:"pendingClients"`
	AppointmentsToday    int     `json:"appointmentsToday"`
	UpcomingAppointments int     `json:"upcomingAppointments"`
	MonthIncome          float64 `json:"monthIncome"`
	MonthExpense         float64 `json:"monthExpense"`
	MonthNet             float64 `json:"monthNet"`

	DraftCount      uint64  `json:"draftCount"`
	DraftAvgSeconds float64 `json:"draftAvgSeconds"`
}

// GetStats computes the dashboard aggregates.
// GET /admin/dashboard
func (h *AdminDashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	today := h.clock.Today()
	month := today[:len("2006-01")]

	stats := DashboardStats{}

	for _, c := range h.state.Clients() {
		stats.TotalClients++
		if c.Status == studio.ClientPending {
			stats.PendingClients++
		}
	}

	for _, a := range h.state.Appointments() {
		if a.Status == studio.AppointmentCancelled {
			continue
		}
		if a.Date == today {
			stats.AppointmentsToday++
		}
		if a.Date >= today && a.Status == studio.AppointmentScheduled {
			stats.UpcomingAppointments++
		}
	}

	for _, f := range h.state.Finances() {
		if !strings.HasPrefix(f.Date, month) {
			continue
		}
		switch f.Type {
		case studio.FinanceIncome:
			stats.MonthIncome += f.Amount
		case studio.FinanceExpense:
			stats.MonthExpense += f.Amount
		}
	}
	stats.MonthNet = stats.MonthIncome - stats.MonthExpense

	stats.DraftCount, stats.DraftAvgSeconds = h.draftLatencySnapshot()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("failed to encode dashboard stats", "error", err)
	}
}

// draftLatencySnapshot walks the gatherer output for the drafting latency
// histogram and reduces it to a count and mean.
func (h *AdminDashboardHandler) draftLatencySnapshot() (uint64, float64) {
	if h.gatherer == nil {
		return 0, 0
	}
	families, err := h.gatherer.Gather()
	if err != nil {
		h.logger.Error("failed to gather metrics", "error", err)
		return 0, 0
	}

	var count uint64
	var sum float64
	for _, family := range families {
		if family.GetName() != draftLatencyMetric || family.GetType() != dto.MetricType_HISTOGRAM {
			continue
		}
		for _, m := range family.GetMetric() {
			histogram := m.GetHistogram()
			count += histogram.GetSampleCount()
			sum += histogram.GetSampleSum()
		}
	}
	if count == 0 {
		return 0, 0
	}
	return count, sum / float64(count)
}

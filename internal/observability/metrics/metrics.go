package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the public booking flow.
type BookingMetrics struct {
	bookingsTotal     *prometheus.CounterVec
	availabilityTotal prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studio",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Total public booking submissions",
		}, []string{"status"}),
		availabilityTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "studio",
			Subsystem: "booking",
			Name:      "availability_requests_total",
			Help:      "Total availability lookups",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.availabilityTotal)
	return m
}

func (m *BookingMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveAvailability() {
	if m == nil {
		return
	}
	m.availabilityTotal.Inc()
}

// CopyMetrics exposes counters/histograms for message drafting.
type CopyMetrics struct {
	draftsTotal  *prometheus.CounterVec
	draftLatency *prometheus.HistogramVec
}

func NewCopyMetrics(reg prometheus.Registerer) *CopyMetrics {
	m := &CopyMetrics{
		draftsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studio",
			Subsystem: "copy",
			Name:      "drafts_total",
			Help:      "Total drafted messages",
		}, []string{"kind", "source"}),
		draftLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "studio",
			Subsystem: "copy",
			Name:      "draft_latency_seconds",
			Help:      "Latency of message drafting",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.draftsTotal, m.draftLatency)
	return m
}

func (m *CopyMetrics) ObserveDraft(kind, source string) {
	if m == nil {
		return
	}
	m.draftsTotal.WithLabelValues(kind, source).Inc()
}

func (m *CopyMetrics) ObserveDraftLatency(kind string, seconds float64) {
	if m == nil {
		return
	}
	m.draftLatency.WithLabelValues(kind).Observe(seconds)
}

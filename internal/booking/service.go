package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/trigueirabraids/studio-platform/internal/observability/metrics"
	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

var bookingTracer = otel.Tracer("studio.internal.booking")

// Request is one booking submission from the public widget.
type Request struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// Service answers availability queries and turns submissions into the
// combined client/appointment/income write.
type Service struct {
	state   *studio.State
	clock   *Clock
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewService constructs a booking service.
func NewService(state *studio.State, clock *Clock, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if state == nil {
		panic("booking: state required")
	}
	if clock == nil {
		panic("booking: clock required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{state: state, clock: clock, metrics: m, logger: logger.Named("booking")}
}

// AvailableSlots lists the slots still open on a date. Today's slots whose
// hour is already behind the studio clock are dropped; dates before today
// yield nothing.
func (s *Service) AvailableSlots(date string) ([]string, error) {
	s.metrics.ObserveAvailability()

	day, err := s.clock.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidRequest, date)
	}

	now := s.clock.Now()
	today := now.Format(dateLayout)
	if day.Format(dateLayout) < today {
		return []string{}, nil
	}

	available := make([]string, 0, len(Slots))
	for _, slot := range Slots {
		if date == today && slotHour(slot) < now.Hour() {
			continue
		}
		if s.state.SlotTaken(date, slot) {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

// Book validates a submission, reuses or creates the client, and applies
// the appointment plus its income record as one write. The returned
// appointment carries the price and duration from the current settings.
func (s *Service) Book(ctx context.Context, req Request) (studio.Appointment, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.submit")
	defer span.End()
	span.SetAttributes(
		attribute.String("studio.booking_date", req.Date),
		attribute.String("studio.booking_time", req.Time),
	)

	if err := s.validate(req); err != nil {
		s.metrics.ObserveBooking("invalid")
		span.RecordError(err)
		return studio.Appointment{}, err
	}

	settings := s.state.Settings()

	clientID := ""
	var newClient *studio.Client
	if existing, ok := s.state.ClientByEmail(req.Email); ok {
		clientID = existing.ID
	} else {
		clientID = uuid.NewString()
		newClient = &studio.Client{
			ID:             clientID,
			Name:           strings.TrimSpace(req.Name),
			Email:          strings.TrimSpace(req.Email),
			Phone:          strings.TrimSpace(req.Phone),
			Address:        "A combinar",
			Status:         studio.ClientPending,
			TreatmentStage: "First Contact",
		}
	}

	appointment := studio.Appointment{
		ID:       "app-" + uuid.NewString(),
		ClientID: clientID,
		Date:     req.Date,
		Time:     req.Time,
		Type:     "Box Braids",
		Status:   studio.AppointmentScheduled,
		Price:    settings.DefaultPrice,
		Duration: settings.DefaultDuration,
	}
	record := studio.FinanceRecord{
		ID:          "f-" + uuid.NewString(),
		Description: "Agendamento Online - " + strings.TrimSpace(req.Name),
		Amount:      settings.DefaultPrice,
		Type:        studio.FinanceIncome,
		Date:        req.Date,
		Category:    "Serviço",
	}

	err := s.state.ApplyBooking(ctx, studio.BookingWrite{
		NewClient:   newClient,
		Appointment: appointment,
		Finance:     record,
	})
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, studio.ErrSlotTaken) {
			s.metrics.ObserveBooking("slot_taken")
			return studio.Appointment{}, err
		}
		s.metrics.ObserveBooking("error")
		return studio.Appointment{}, fmt.Errorf("booking: apply: %w", err)
	}

	s.metrics.ObserveBooking("accepted")
	s.logger.Info("booking accepted",
		"client_id", clientID,
		"new_client", newClient != nil,
		"date", req.Date,
		"time", req.Time,
	)
	return appointment, nil
}

func (s *Service) validate(req Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}
	if !offered(req.Time) {
		return ErrSlotNotOffered
	}

	day, err := s.clock.ParseDate(req.Date)
	if err != nil {
		return fmt.Errorf("%w: date %q", ErrInvalidRequest, req.Date)
	}
	now := s.clock.Now()
	today := now.Format(dateLayout)
	if day.Format(dateLayout) < today {
		return ErrSlotInPast
	}
	if req.Date == today && slotHour(req.Time) < now.Hour() {
		return ErrSlotInPast
	}
	return nil
}

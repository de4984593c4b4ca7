package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigueirabraids/studio-platform/internal/copy"
	"github.com/trigueirabraids/studio-platform/internal/observability/metrics"
	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

func newTestHandler(t *testing.T) (*Handler, *studio.State) {
	t.Helper()
	svc, state := newTestService(t)
	template := copy.NewTemplateDrafter("Studio Trigueira Braids", "Vitória Trigueira")
	drafter := copy.NewFallbackDrafter(nil, template, logging.Default())
	h := NewHandler(svc, drafter, template, metrics.NewCopyMetrics(prometheus.NewRegistry()), logging.Default())
	return h, state
}

func TestGetAvailability(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/availability?date=2024-06-10", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Date  string   `json:"date"`
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-06-10", body.Date)
	assert.Equal(t, []string{"08:00", "13:00", "14:00"}, body.Slots)
}

func TestGetAvailabilityRequiresDate(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/availability", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingReturnsAppointmentAndMessage(t *testing.T) {
	h, state := newTestHandler(t)

	payload, _ := json.Marshal(Request{
		Name: "Ana", Email: "ana@x.com", Phone: "21 99999-0000",
		Date: "2024-06-10", Time: "13:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-06-10", body.Appointment.Date)
	assert.Equal(t, "13:00", body.Appointment.Time)
	assert.Contains(t, body.Message, "Ana")
	assert.Contains(t, body.Message, "2024-06-10")
	assert.Contains(t, body.Message, "13:00")

	_, ok := state.ClientByEmail("ana@x.com")
	assert.True(t, ok)
}

func TestCreateBookingConflictOnTakenSlot(t *testing.T) {
	h, state := newTestHandler(t)
	require.NoError(t, state.AddAppointment(context.Background(), studio.Appointment{
		ID: "a1", ClientID: "c1", Date: "2024-06-10", Time: "13:00",
		Type: "Box Braids", Status: studio.AppointmentScheduled,
	}))

	payload, _ := json.Marshal(Request{
		Name: "Ana", Email: "ana@x.com", Date: "2024-06-10", Time: "13:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateBookingRejectsPastSlot(t *testing.T) {
	h, _ := newTestHandler(t)

	payload, _ := json.Marshal(Request{
		Name: "Ana", Email: "ana@x.com", Date: "2024-06-04", Time: "13:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateBookingRejectsInvalidBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// failingDrafter always errors so the handler's catch path is exercised.
type failingDrafter struct{}

func (failingDrafter) DraftConfirmation(context.Context, copy.ConfirmationRequest) (string, error) {
	return "", errors.New("model unavailable")
}

func (failingDrafter) DraftRetention(context.Context, copy.RetentionRequest) (string, error) {
	return "", errors.New("model unavailable")
}

func TestCreateBookingFallsBackToTemplateWhenDraftingFails(t *testing.T) {
	svc, _ := newTestService(t)
	template := copy.NewTemplateDrafter("Studio Trigueira Braids", "Vitória Trigueira")
	h := NewHandler(svc, failingDrafter{}, template, metrics.NewCopyMetrics(prometheus.NewRegistry()), logging.Default())

	payload, _ := json.Marshal(Request{
		Name: "Ana", Email: "ana@x.com", Date: "2024-06-10", Time: "13:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "Ana")
	assert.Contains(t, body.Message, "2024-06-10")
	assert.Contains(t, body.Message, "13:00")
}

func TestCreateBookingWithoutAnyDrafter(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHandler(svc, nil, nil, metrics.NewCopyMetrics(prometheus.NewRegistry()), logging.Default())

	payload, _ := json.Marshal(Request{
		Name: "Ana", Email: "ana@x.com", Date: "2024-06-10", Time: "14:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Message)
}

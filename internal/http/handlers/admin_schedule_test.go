package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

func newScheduleHandler(t *testing.T) (*AdminScheduleHandler, *studio.State) {
	t.Helper()
	state := newTestState(t)
	return NewAdminScheduleHandler(state, logging.Default()), state
}

func TestScheduleListIncludesSeed(t *testing.T) {
	h, _ := newScheduleHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var appointments []studio.Appointment
	decodeBody(t, rec, &appointments)
	require.NotEmpty(t, appointments)
	assert.Equal(t, "Box Braids", appointments[0].Type)
}

func TestScheduleCreate(t *testing.T) {
	h, state := newScheduleHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPost, "/", studio.Appointment{
		ClientID: "c1",
		Date:     dateFromNow(3),
		Time:     "13:00",
		Type:     "Knotless Braids",
		Price:    400,
		Duration: 300,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var created studio.Appointment
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, studio.AppointmentScheduled, created.Status)

	_, ok := state.AppointmentByID(created.ID)
	assert.True(t, ok)
}

func TestScheduleCreateFillsPriceAndDurationFromSettings(t *testing.T) {
	h, state := newScheduleHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPost, "/", studio.Appointment{
		ClientID: "c1",
		Date:     dateFromNow(2),
		Time:     "08:00",
		Type:     "Box Braids",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var created studio.Appointment
	decodeBody(t, rec, &created)
	assert.Equal(t, 250.0, created.Price)
	assert.Equal(t, 240, created.Duration)

	stored, ok := state.AppointmentByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, 250.0, stored.Price)
	assert.Equal(t, 240, stored.Duration)
}

func TestScheduleCreateDefaultsFollowSettingsChanges(t *testing.T) {
	h, state := newScheduleHandler(t)
	require.NoError(t, state.UpdateSettings(context.Background(), studio.Settings{
		DefaultPrice: 300, DefaultDuration: 300,
	}))

	rec := doJSON(t, h.Routes(), http.MethodPost, "/", studio.Appointment{
		ClientID: "c1",
		Date:     dateFromNow(2),
		Time:     "13:00",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var created studio.Appointment
	decodeBody(t, rec, &created)
	assert.Equal(t, 300.0, created.Price)
	assert.Equal(t, 300, created.Duration)
}

func TestScheduleCreateKeepsExplicitPriceAndDuration(t *testing.T) {
	h, _ := newScheduleHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPost, "/", studio.Appointment{
		ClientID: "c1",
		Date:     dateFromNow(2),
		Time:     "14:00",
		Price:    400,
		Duration: 360,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var created studio.Appointment
	decodeBody(t, rec, &created)
	assert.Equal(t, 400.0, created.Price)
	assert.Equal(t, 360, created.Duration)
}

func TestScheduleListFiltersByDate(t *testing.T) {
	h, state := newScheduleHandler(t)
	target := dateFromNow(5)
	require.NoError(t, state.AddAppointment(context.Background(), studio.Appointment{
		ID: "a-target", ClientID: "c1", Date: target, Time: "13:00",
		Type: "Box Braids", Status: studio.AppointmentScheduled,
	}))
	require.NoError(t, state.AddAppointment(context.Background(), studio.Appointment{
		ID: "a-other", ClientID: "c1", Date: dateFromNow(6), Time: "13:00",
		Type: "Box Braids", Status: studio.AppointmentScheduled,
	}))

	rec := doJSON(t, h.Routes(), http.MethodGet, "/?date="+target, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var appointments []studio.Appointment
	decodeBody(t, rec, &appointments)
	require.Len(t, appointments, 1)
	assert.Equal(t, "a-target", appointments[0].ID)
}

func TestScheduleListWithoutDateReturnsAll(t *testing.T) {
	h, state := newScheduleHandler(t)
	require.NoError(t, state.AddAppointment(context.Background(), studio.Appointment{
		ID: "a-extra", ClientID: "c1", Date: dateFromNow(4), Time: "14:00",
		Type: "Box Braids", Status: studio.AppointmentScheduled,
	}))

	rec := doJSON(t, h.Routes(), http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var appointments []studio.Appointment
	decodeBody(t, rec, &appointments)
	assert.Len(t, appointments, len(state.Appointments()))
}

func TestScheduleCreateRequiresDateAndTime(t *testing.T) {
	h, _ := newScheduleHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPost, "/", studio.Appointment{ClientID: "c1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleUpdateCancelsAppointment(t *testing.T) {
	h, state := newScheduleHandler(t)
	appointment := state.Appointments()[0]
	appointment.Status = studio.AppointmentCancelled

	rec := doJSON(t, h.Routes(), http.MethodPut, "/"+appointment.ID, appointment)

	require.Equal(t, http.StatusOK, rec.Code)
	updated, ok := state.AppointmentByID(appointment.ID)
	require.True(t, ok)
	assert.Equal(t, studio.AppointmentCancelled, updated.Status)
	assert.False(t, state.SlotTaken(appointment.Date, appointment.Time))
}

func TestScheduleUpdateUnknownID(t *testing.T) {
	h, _ := newScheduleHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPut, "/nope", studio.Appointment{Date: "2024-06-10", Time: "13:00"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleDelete(t *testing.T) {
	h, state := newScheduleHandler(t)
	appointment := state.Appointments()[0]

	rec := doJSON(t, h.Routes(), http.MethodDelete, "/"+appointment.ID, nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := state.AppointmentByID(appointment.ID)
	assert.False(t, ok)
}

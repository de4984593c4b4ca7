package studio

import "errors"

var (
	// ErrClientNotFound is returned when a client ID has no record
	ErrClientNotFound = errors.New("client not found")

	// ErrAppointmentNotFound is returned when an appointment ID has no record
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrFinanceRecordNotFound is returned when a ledger entry ID has no record
	ErrFinanceRecordNotFound = errors.New("finance record not found")

	// ErrTaskNotFound is returned when a task ID has no record
	ErrTaskNotFound = errors.New("task not found")

	// ErrSlotTaken is returned when a non-cancelled appointment already
	// occupies the requested date and time
	ErrSlotTaken = errors.New("slot already taken")
)

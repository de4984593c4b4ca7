package booking

import "errors"

var (
	// ErrInvalidRequest signals a malformed booking request (missing name,
	// email or an unparseable date).
	ErrInvalidRequest = errors.New("booking: invalid request")
	// ErrSlotNotOffered signals a time outside the studio's fixed slots.
	ErrSlotNotOffered = errors.New("booking: slot not offered")
	// ErrSlotInPast signals a date before today or a slot already behind
	// the studio clock.
	ErrSlotInPast = errors.New("booking: slot in the past")
)

// Package booking implements the public booking flow: slot availability
// for the widget's date picker and the combined client/appointment/income
// write a submission performs.
package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Slots are the studio's fixed daily offering. A braiding session takes
// hours, so the day holds one morning start and two afternoon starts.
var Slots = []string{"08:00", "13:00", "14:00"}

const dateLayout = "2006-01-02"

// Clock resolves "today" and "current hour" in the studio's time zone.
// Tests override now.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock loads the given IANA time zone. An empty name falls back to
// America/Sao_Paulo.
func NewClock(tz string) (*Clock, error) {
	if strings.TrimSpace(tz) == "" {
		tz = "America/Sao_Paulo"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("booking: load time zone %q: %w", tz, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Now returns the current time in the studio's zone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns the current date in the studio's zone.
func (c *Clock) Today() string {
	return c.Now().Format(dateLayout)
}

// ParseDate parses a widget date in the studio's zone.
func (c *Clock) ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, c.loc)
}

// slotHour extracts the hour from a "15:04" slot. Slots is a fixed list,
// so the parse cannot fail at runtime.
func slotHour(slot string) int {
	h, _ := strconv.Atoi(strings.SplitN(slot, ":", 2)[0])
	return h
}

// offered reports whether the time is one of the fixed slots.
func offered(timeSlot string) bool {
	for _, s := range Slots {
		if s == timeSlot {
			return true
		}
	}
	return false
}

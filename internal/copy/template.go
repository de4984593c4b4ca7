package copy

import (
	"context"
	"fmt"
)

// TemplateDrafter produces deterministic Portuguese messages. It is the
// fallback behind the networked drafter and the default when no API key is
// configured. It never fails.
type TemplateDrafter struct {
	studioName  string
	braiderName string
}

// NewTemplateDrafter creates a template drafter for the given studio.
func NewTemplateDrafter(studioName, braiderName string) *TemplateDrafter {
	return &TemplateDrafter{studioName: studioName, braiderName: braiderName}
}

// DraftConfirmation returns the fixed confirmation template with the
// client's name, date and time filled in.
func (d *TemplateDrafter) DraftConfirmation(_ context.Context, req ConfirmationRequest) (string, error) {
	return fmt.Sprintf(
		"Olá %s, seu momento de rainha está confirmado! %s te espera no %s dia %s às %s. 👑✨",
		req.ClientName, d.braiderName, d.studioName, req.Date, req.Time,
	), nil
}

// DraftRetention returns the fixed win-back template. A missing last
// session date reads as "algum tempo".
func (d *TemplateDrafter) DraftRetention(_ context.Context, req RetentionRequest) (string, error) {
	since := req.LastSessionDate
	if since == "" {
		since = "algum tempo"
	}
	return fmt.Sprintf(
		"Olá %s, como estão suas tranças? A Rainha aqui está com saudades! Notei que já faz %s que não renovamos seu visual no %s. Que tal agendarmos um horário? 👑✨",
		req.ClientName, humanizeSince(since), d.studioName,
	), nil
}

// humanizeSince turns a bare date into "um tempinho desde <date>" phrasing
// kept short enough for WhatsApp.
func humanizeSince(since string) string {
	if since == "algum tempo" {
		return "um tempinho"
	}
	return fmt.Sprintf("um tempinho (desde %s)", since)
}

// Package copy drafts the WhatsApp messages the studio sends to clients:
// booking confirmations and retention (win-back) nudges. Drafting is a
// best-effort convenience; no caller may depend on a networked drafter
// succeeding.
package copy

import "context"

// ConfirmationRequest carries what a booking confirmation needs.
type ConfirmationRequest struct {
	ClientName string
	Date       string // "2006-01-02"
	Time       string // "15:04"
}

// RetentionRequest carries what a win-back message needs. LastSessionDate
// is empty when the client has no recorded session.
type RetentionRequest struct {
	ClientName      string
	LastSessionDate string
}

// Drafter produces client-facing message text.
type Drafter interface {
	DraftConfirmation(ctx context.Context, req ConfirmationRequest) (string, error)
	DraftRetention(ctx context.Context, req RetentionRequest) (string, error)
}

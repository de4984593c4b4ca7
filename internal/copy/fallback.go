package copy

import (
	"context"

	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

// FallbackDrafter wraps a primary drafter and falls back to deterministic
// templates whenever the primary fails or is not configured. It never
// returns an error, so callers can always show something to the client.
type FallbackDrafter struct {
	primary  Drafter
	template *TemplateDrafter
	logger   *logging.Logger
}

// NewFallbackDrafter creates a drafter with template fallback. A nil
// primary means templates are used for every draft.
func NewFallbackDrafter(primary Drafter, template *TemplateDrafter, logger *logging.Logger) *FallbackDrafter {
	if logger == nil {
		logger = logging.Default()
	}
	return &FallbackDrafter{
		primary:  primary,
		template: template,
		logger:   logger.Named("copy"),
	}
}

func (d *FallbackDrafter) DraftConfirmation(ctx context.Context, req ConfirmationRequest) (string, error) {
	if d.primary != nil {
		text, err := d.primary.DraftConfirmation(ctx, req)
		if err == nil {
			return text, nil
		}
		d.logger.Warn("primary drafter failed, using template", "kind", "confirmation", "error", err)
	}
	return d.template.DraftConfirmation(ctx, req)
}

func (d *FallbackDrafter) DraftRetention(ctx context.Context, req RetentionRequest) (string, error) {
	if d.primary != nil {
		text, err := d.primary.DraftRetention(ctx, req)
		if err == nil {
			return text, nil
		}
		d.logger.Warn("primary drafter failed, using template", "kind", "retention", "error", err)
	}
	return d.template.DraftRetention(ctx, req)
}

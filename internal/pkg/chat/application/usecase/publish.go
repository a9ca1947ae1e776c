package usecase

import (
	"context"
	"log/slog"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
)

// publishJSON emits a domain event after a successful state mutation.
// Publish failures are logged and swallowed: the mutation is already
// committed and the notification side is allowed to diverge
// (at-most-one-notification, no distributed transaction).
func publishJSON(ctx context.Context, bus busport.Publisher, log *slog.Logger, key string, payload any) {
	if err := busport.PublishJSON(ctx, bus, key, payload); err != nil {
		log.Error("event publish failed", "key", key, "error", err)
	}
}

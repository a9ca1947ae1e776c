package task

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	listing "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/domain"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/usecase"
)

// RegisterRequestAcceptedTask binds the request-accepted consumer to the
// listing queue. Re-delivery of the same event leaves the post in the same
// terminal state; an event for a missing post is logged and dropped so a
// permanently-dangling reference cannot stall the queue.
func RegisterRequestAcceptedTask(srv busport.Server, uc *usecase.ClosePostUseCase, log *slog.Logger) {
	srv.Register(event.KeyRequestAccepted, func(ctx context.Context, e busport.Event) error {
		var p event.RequestAccepted
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			log.Error("malformed request-accepted payload, dropping", "error", err)
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		err := uc.Execute(ctx, p.AdoptionPostID, p.AdopterID)
		if errors.Is(err, listing.ErrPostNotFound) {
			log.Warn("request accepted for unknown post, dropping",
				"postId", p.AdoptionPostID, "adopterId", p.AdopterID)
			return nil
		}
		if err != nil {
			// infrastructure failure: let the broker retry
			return err
		}
		log.Info("post closed after accepted request",
			"postId", p.AdoptionPostID, "adopterId", p.AdopterID)
		return nil
	})
}

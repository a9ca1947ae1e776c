package task

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/application/usecase"
)

// RegisterEmailTasks binds both notification consumers to the email queue.
// Emails are best effort: every failure is logged and the event dropped, a
// notification must never be retried into the user's inbox twice.
func RegisterEmailTasks(srv busport.Server, uc *usecase.NotifyUseCase, log *slog.Logger) {
	srv.Register(event.KeyChatNotification, func(ctx context.Context, e busport.Event) error {
		var msg event.EmailMessage
		if err := json.Unmarshal(e.Payload, &msg); err != nil {
			log.Error("malformed chat notification payload, dropping", "error", err)
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		if err := uc.NotifyChat(ctx, msg); err != nil {
			log.Error("chat notification failed, dropping",
				"receiverId", msg.ReceiverID, "type", msg.Type, "error", err)
		}
		return nil
	})

	srv.Register(event.KeySavedSearchMatch, func(ctx context.Context, e busport.Event) error {
		var match event.SearchMatch
		if err := json.Unmarshal(e.Payload, &match); err != nil {
			log.Error("malformed search match payload, dropping", "error", err)
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		if err := uc.NotifyMatch(ctx, match); err != nil {
			log.Error("match notification failed, dropping",
				"userId", match.UserID, "postId", match.ID, "error", err)
		}
		return nil
	})
}

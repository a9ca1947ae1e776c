package task

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/usecase"
)

// RegisterNewPostTask binds the new-post consumer to the savedsearch queue.
// Matching is a pure read plus per-user event emission, so a replayed
// delivery at worst re-emits match events the notification side already
// handled.
func RegisterNewPostTask(srv busport.Server, uc *usecase.MatchPostUseCase, log *slog.Logger) {
	srv.Register(event.KeyNewPost, func(ctx context.Context, e busport.Event) error {
		var post event.AdoptionPostSummary
		if err := json.Unmarshal(e.Payload, &post); err != nil {
			log.Error("malformed new-post payload, dropping", "error", err)
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		userIDs, err := uc.Execute(ctx, post)
		if err != nil {
			return err
		}
		log.Info("new post matched against saved searches",
			"postId", post.ID, "matches", len(userIDs))
		return nil
	})
}

package usecase

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	search "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/persistence/repository/port"
)

// MatchPostUseCase evaluates every stored search against a freshly
// published post and emits one match event per matching user. Per-user
// events bound the blast radius of a delivery failure to one notification;
// do not batch them.
// One class per use case (own file)
type MatchPostUseCase struct {
	Repo repository.SearchRepository
	Bus  busport.Publisher
	Log  *slog.Logger
}

func NewMatchPostUseCase(repo repository.SearchRepository, bus busport.Publisher, log *slog.Logger) *MatchPostUseCase {
	return &MatchPostUseCase{Repo: repo, Bus: bus, Log: log}
}

// Execute returns the user ids a match event was emitted for.
func (uc *MatchPostUseCase) Execute(ctx context.Context, post event.AdoptionPostSummary) ([]string, error) {
	searches, err := uc.Repo.AllSearches(ctx)
	if err != nil {
		return nil, wrapPersistence(err)
	}

	matching := lo.Filter(searches, func(s search.SavedSearch, _ int) bool {
		return s.Matches(post)
	})
	// A user with several matching searches still gets one notification.
	userIDs := lo.Uniq(lo.Map(matching, func(s search.SavedSearch, _ int) string {
		return s.UserID
	}))

	for _, userID := range userIDs {
		if err := busport.PublishJSON(ctx, uc.Bus, event.KeySavedSearchMatch, event.SearchMatch{
			AdoptionPostSummary: post,
			UserID:              userID,
		}); err != nil {
			uc.Log.Error("match event publish failed", "userId", userID, "postId", post.ID, "error", err)
		}
	}
	return userIDs, nil
}

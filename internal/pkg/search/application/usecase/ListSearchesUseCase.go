package usecase

import (
	"context"

	search "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/persistence/repository/port"
)

// ListSearchesUseCase returns every saved search owned by a user.
// One class per use case (own file)
type ListSearchesUseCase struct {
	Repo repository.SearchRepository
}

func NewListSearchesUseCase(repo repository.SearchRepository) *ListSearchesUseCase {
	return &ListSearchesUseCase{Repo: repo}
}

func (uc *ListSearchesUseCase) Execute(ctx context.Context, userID string) ([]search.SavedSearch, error) {
	searches, err := uc.Repo.SearchesByUser(ctx, userID)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return searches, nil
}

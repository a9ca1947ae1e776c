package usecase

import (
	"context"

	search "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/persistence/repository/port"
)

// DeleteSearchUseCase removes a saved search; only its owner may do so.
// One class per use case (own file)
type DeleteSearchUseCase struct {
	Repo repository.SearchRepository
}

func NewDeleteSearchUseCase(repo repository.SearchRepository) *DeleteSearchUseCase {
	return &DeleteSearchUseCase{Repo: repo}
}

func (uc *DeleteSearchUseCase) Execute(ctx context.Context, id, callerID string) error {
	s, err := uc.Repo.GetSearch(ctx, id)
	if err != nil {
		return wrapPersistence(err)
	}
	if s.UserID != callerID {
		return search.ErrNotSearchOwner
	}
	if err := uc.Repo.DeleteSearch(ctx, id); err != nil {
		return wrapPersistence(err)
	}
	return nil
}

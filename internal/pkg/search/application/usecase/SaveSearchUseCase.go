package usecase

import (
	"context"

	search "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/persistence/repository/port"
)

// SaveSearchInput carries the filter fields of a new saved search.
type SaveSearchInput struct {
	UserID   string
	Species  []string
	Breed    []string
	Gender   string
	MinAge   *int
	MaxAge   *int
	Color    []string
	Location []string
}

// SaveSearchUseCase persists a standing search filter for a user.
// One class per use case (own file)
type SaveSearchUseCase struct {
	Repo repository.SearchRepository
}

func NewSaveSearchUseCase(repo repository.SearchRepository) *SaveSearchUseCase {
	return &SaveSearchUseCase{Repo: repo}
}

func (uc *SaveSearchUseCase) Execute(ctx context.Context, in SaveSearchInput) (*search.SavedSearch, error) {
	s, err := search.NewSavedSearch(search.SavedSearch{
		UserID:   in.UserID,
		Species:  in.Species,
		Breed:    in.Breed,
		Gender:   in.Gender,
		MinAge:   in.MinAge,
		MaxAge:   in.MaxAge,
		Color:    in.Color,
		Location: in.Location,
	})
	if err != nil {
		return nil, err
	}
	saved, err := uc.Repo.SaveSearch(ctx, *s)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return saved, nil
}

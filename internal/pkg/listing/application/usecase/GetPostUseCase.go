package usecase

import (
	"context"

	listing "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/persistence/repository/port"
)

// GetPostUseCase fetches one adoption post by id.
// One class per use case (own file)
type GetPostUseCase struct {
	Repo repository.PostRepository
}

func NewGetPostUseCase(repo repository.PostRepository) *GetPostUseCase {
	return &GetPostUseCase{Repo: repo}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, id string) (*listing.AdoptionPost, error) {
	post, err := uc.Repo.GetPost(ctx, id)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return post, nil
}

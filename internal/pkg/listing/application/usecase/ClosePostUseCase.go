package usecase

import (
	"context"

	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/persistence/repository/port"
)

// ClosePostUseCase marks a post adopted: active=false with the adopter
// recorded. Driven by the request-accepted event consumer, never by HTTP.
// One class per use case (own file)
type ClosePostUseCase struct {
	Repo repository.PostRepository
}

func NewClosePostUseCase(repo repository.PostRepository) *ClosePostUseCase {
	return &ClosePostUseCase{Repo: repo}
}

func (uc *ClosePostUseCase) Execute(ctx context.Context, postID, adopterID string) error {
	if err := uc.Repo.ClosePost(ctx, postID, adopterID); err != nil {
		return wrapPersistence(err)
	}
	return nil
}

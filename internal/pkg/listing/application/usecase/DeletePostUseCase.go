package usecase

import (
	"context"

	listing "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/persistence/repository/port"
)

// DeletePostUseCase removes an adoption post; only its owner may do so.
// One class per use case (own file)
type DeletePostUseCase struct {
	Repo repository.PostRepository
}

func NewDeletePostUseCase(repo repository.PostRepository) *DeletePostUseCase {
	return &DeletePostUseCase{Repo: repo}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, id, callerID string) error {
	post, err := uc.Repo.GetPost(ctx, id)
	if err != nil {
		return wrapPersistence(err)
	}
	if post.OwnerID != callerID {
		return listing.ErrNotPostOwner
	}
	if err := uc.Repo.DeletePost(ctx, id); err != nil {
		return wrapPersistence(err)
	}
	return nil
}

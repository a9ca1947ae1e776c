package usecase

import (
	"context"
	"log/slog"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	listing "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/persistence/repository/port"
)

// CreatePostInput carries the data needed to publish a new adoption post.
type CreatePostInput struct {
	OwnerID     string
	Name        string
	Description string
	Species     string
	Breed       string
	Gender      string
	Age         int
	Color       string
	Location    string
}

// CreatePostUseCase persists a new adoption post and emits the new-listing
// event consumed by the saved-search matching engine.
// One class per use case (own file)
type CreatePostUseCase struct {
	Repo repository.PostRepository
	Bus  busport.Publisher
	Log  *slog.Logger
}

func NewCreatePostUseCase(repo repository.PostRepository, bus busport.Publisher, log *slog.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{Repo: repo, Bus: bus, Log: log}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, in CreatePostInput) (*listing.AdoptionPost, error) {
	post, err := listing.NewAdoptionPost(listing.AdoptionPost{
		Name:        in.Name,
		Description: in.Description,
		Species:     in.Species,
		Breed:       in.Breed,
		Gender:      in.Gender,
		Age:         in.Age,
		Color:       in.Color,
		Location:    in.Location,
		OwnerID:     in.OwnerID,
	})
	if err != nil {
		return nil, err
	}
	saved, err := uc.Repo.CreatePost(ctx, *post)
	if err != nil {
		return nil, wrapPersistence(err)
	}

	// Publish-after-commit: a lost event means a missed match notification,
	// never a lost listing.
	if err := busport.PublishJSON(ctx, uc.Bus, event.KeyNewPost, event.AdoptionPostSummary{
		ID:       saved.ID,
		Name:     saved.Name,
		Species:  saved.Species,
		Breed:    saved.Breed,
		Age:      saved.Age,
		Gender:   saved.Gender,
		Color:    saved.Color,
		Location: saved.Location,
		OwnerID:  saved.OwnerID,
	}); err != nil {
		uc.Log.Error("event publish failed", "key", event.KeyNewPost, "error", err)
	}
	return saved, nil
}

package repository

import (
	"context"

	listing "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/domain"
)

// PostRepository defines persistence operations for adoption posts.
type PostRepository interface {
	// CreatePost persists a post and returns the stored row with its id.
	CreatePost(ctx context.Context, p listing.AdoptionPost) (*listing.AdoptionPost, error)

	// GetPost returns listing.ErrPostNotFound when no such row exists.
	GetPost(ctx context.Context, id string) (*listing.AdoptionPost, error)

	// DeletePost removes a post, returning listing.ErrPostNotFound when missing.
	DeletePost(ctx context.Context, id string) error

	// ClosePost sets active=false and records the adopter. It is idempotent:
	// closing an already-closed post is a no-op, so event re-delivery leaves
	// the row in the same terminal state. Missing post -> ErrPostNotFound.
	ClosePost(ctx context.Context, id, adopterID string) error
}

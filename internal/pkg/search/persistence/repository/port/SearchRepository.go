package repository

import (
	"context"

	search "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/domain"
)

// SearchRepository defines persistence operations for saved searches.
type SearchRepository interface {
	// SaveSearch persists a search and returns the stored row with its id.
	SaveSearch(ctx context.Context, s search.SavedSearch) (*search.SavedSearch, error)

	// GetSearch returns search.ErrSearchNotFound when no such row exists.
	GetSearch(ctx context.Context, id string) (*search.SavedSearch, error)

	// DeleteSearch removes a search, returning search.ErrSearchNotFound when missing.
	DeleteSearch(ctx context.Context, id string) error

	// SearchesByUser returns every search owned by the user.
	SearchesByUser(ctx context.Context, userID string) ([]search.SavedSearch, error)

	// AllSearches returns every stored search; the matching engine evaluates
	// all of them against each new post.
	AllSearches(ctx context.Context) ([]search.SavedSearch, error)
}

package adapter

import (
	"context"
	"sync"

	"github.com/google/uuid"

	search "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/domain"
)

// MemSearchRepository is an in-memory SearchRepository for tests and dev runs.
type MemSearchRepository struct {
	mu       sync.Mutex
	searches map[string]search.SavedSearch
	order    []string
}

func NewMemSearchRepository() *MemSearchRepository {
	return &MemSearchRepository{searches: make(map[string]search.SavedSearch)}
}

func (r *MemSearchRepository) SaveSearch(ctx context.Context, s search.SavedSearch) (*search.SavedSearch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	r.searches[s.ID] = s
	r.order = append(r.order, s.ID)
	return &s, nil
}

func (r *MemSearchRepository) GetSearch(ctx context.Context, id string) (*search.SavedSearch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.searches[id]
	if !ok {
		return nil, search.ErrSearchNotFound
	}
	return &s, nil
}

func (r *MemSearchRepository) DeleteSearch(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.searches[id]; !ok {
		return search.ErrSearchNotFound
	}
	delete(r.searches, id)
	return nil
}

func (r *MemSearchRepository) SearchesByUser(ctx context.Context, userID string) ([]search.SavedSearch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []search.SavedSearch
	for _, id := range r.order {
		if s, ok := r.searches[id]; ok && s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemSearchRepository) AllSearches(ctx context.Context) ([]search.SavedSearch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []search.SavedSearch
	for _, id := range r.order {
		if s, ok := r.searches[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

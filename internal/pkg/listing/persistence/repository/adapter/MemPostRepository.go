package adapter

import (
	"context"
	"sync"

	"github.com/google/uuid"

	listing "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/domain"
)

// MemPostRepository is an in-memory PostRepository for tests and dev runs.
type MemPostRepository struct {
	mu    sync.Mutex
	posts map[string]listing.AdoptionPost
}

func NewMemPostRepository() *MemPostRepository {
	return &MemPostRepository{posts: make(map[string]listing.AdoptionPost)}
}

func (r *MemPostRepository) CreatePost(ctx context.Context, p listing.AdoptionPost) (*listing.AdoptionPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	r.posts[p.ID] = p
	return &p, nil
}

func (r *MemPostRepository) GetPost(ctx context.Context, id string) (*listing.AdoptionPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, listing.ErrPostNotFound
	}
	return &p, nil
}

func (r *MemPostRepository) DeletePost(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return listing.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *MemPostRepository) ClosePost(ctx context.Context, id, adopterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return listing.ErrPostNotFound
	}
	if !p.Active && p.AdopterID != nil && *p.AdopterID != adopterID {
		// already closed for a different adopter: terminal state, keep it
		return nil
	}
	p.Active = false
	p.AdopterID = &adopterID
	r.posts[id] = p
	return nil
}

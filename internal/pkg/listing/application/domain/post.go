package listing

import (
	"errors"
	"strings"
	"time"
)

// Domain-level errors for the listing context.
var (
	ErrPostNotFound = errors.New("listing: adoption post not found")
	ErrNotPostOwner = errors.New("listing: caller is not the owner of this post")
	ErrInvalidPost  = errors.New("listing: name and species are required")
)

// AdoptionPost is a pet-adoption listing. Active flips to false exactly
// once, when an adoption request referencing the post is accepted.
type AdoptionPost struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	Species         string    `db:"species" json:"species"`
	Breed           string    `db:"breed" json:"breed"`
	Gender          string    `db:"gender" json:"gender"`
	Age             int       `db:"age" json:"age"` // months
	Color           string    `db:"color" json:"color"`
	Location        string    `db:"location" json:"location"`
	OwnerID         string    `db:"owner_id" json:"ownerId"`
	AdopterID       *string   `db:"adopter_id" json:"adopterId,omitempty"`
	Active          bool      `db:"active" json:"active"`
	PublicationDate time.Time `db:"publication_date" json:"publicationDate"`
}

// NewAdoptionPost validates and normalizes a post ready to persist.
func NewAdoptionPost(p AdoptionPost) (*AdoptionPost, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Species = strings.TrimSpace(p.Species)
	if p.Name == "" || p.Species == "" {
		return nil, ErrInvalidPost
	}
	p.Active = true
	p.AdopterID = nil
	if p.PublicationDate.IsZero() {
		p.PublicationDate = time.Now().UTC()
	}
	return &p, nil
}

package search

import (
	"errors"
	"strings"

	"github.com/samber/lo"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
)

// Domain-level errors for the saved-search context.
var (
	ErrSearchNotFound = errors.New("search: saved search not found")
	ErrNotSearchOwner = errors.New("search: caller is not the owner of this saved search")
	ErrInvalidSearch  = errors.New("search: invalid age bounds")
)

// SavedSearch is a user's standing filter evaluated against every new
// adoption post. An absent or empty field matches anything.
type SavedSearch struct {
	ID       string   `db:"id" json:"id"`
	UserID   string   `db:"user_id" json:"userId"`
	Species  []string `db:"species" json:"species,omitempty"`
	Breed    []string `db:"breed" json:"breed,omitempty"`
	Gender   string   `db:"gender" json:"gender,omitempty"`
	MinAge   *int     `db:"min_age" json:"minAge,omitempty"`
	MaxAge   *int     `db:"max_age" json:"maxAge,omitempty"`
	Color    []string `db:"color" json:"color,omitempty"`
	Location []string `db:"location" json:"location,omitempty"`
}

// NewSavedSearch validates a search before persisting it.
func NewSavedSearch(s SavedSearch) (*SavedSearch, error) {
	if s.MinAge != nil && *s.MinAge < 0 {
		return nil, ErrInvalidSearch
	}
	if s.MaxAge != nil && *s.MaxAge < 0 {
		return nil, ErrInvalidSearch
	}
	if s.MinAge != nil && s.MaxAge != nil && *s.MinAge > *s.MaxAge {
		return nil, ErrInvalidSearch
	}
	return &s, nil
}

// Matches evaluates the search against a post with conjunctive per-field
// semantics: set fields match by case-insensitive membership, the gender by
// case-insensitive equality, and age by an inclusive range where an absent
// bound imposes no constraint.
func (s SavedSearch) Matches(p event.AdoptionPostSummary) bool {
	if !matchesSet(s.Species, p.Species) {
		return false
	}
	if !matchesSet(s.Breed, p.Breed) {
		return false
	}
	if s.Gender != "" && !strings.EqualFold(s.Gender, p.Gender) {
		return false
	}
	if s.MinAge != nil && p.Age < *s.MinAge {
		return false
	}
	if s.MaxAge != nil && p.Age > *s.MaxAge {
		return false
	}
	if !matchesSet(s.Color, p.Color) {
		return false
	}
	if !matchesSet(s.Location, p.Location) {
		return false
	}
	return true
}

func matchesSet(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	return lo.ContainsBy(set, func(s string) bool {
		return strings.EqualFold(s, value)
	})
}

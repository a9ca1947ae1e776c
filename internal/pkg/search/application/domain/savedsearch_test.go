package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
)

func intPtr(i int) *int { return &i }

func fidoSummary() event.AdoptionPostSummary {
	return event.AdoptionPostSummary{
		ID: "post-1", Name: "Fido", Species: "Cane", Breed: "Labrador",
		Age: 18, Gender: "M", Color: "Nero", Location: "Torino", OwnerID: "owner-1",
	}
}

func TestSavedSearch_Matches(t *testing.T) {
	tests := []struct {
		name   string
		search SavedSearch
		want   bool
	}{
		{"empty search matches anything", SavedSearch{}, true},
		{"species match", SavedSearch{Species: []string{"Cane"}}, true},
		{"species match is case-insensitive", SavedSearch{Species: []string{"cane"}}, true},
		{"species mismatch", SavedSearch{Species: []string{"Gatto"}}, false},
		{"any of several species", SavedSearch{Species: []string{"Gatto", "Cane"}}, true},
		{"breed mismatch", SavedSearch{Breed: []string{"Beagle"}}, false},
		{"gender match", SavedSearch{Gender: "m"}, true},
		{"gender mismatch", SavedSearch{Gender: "F"}, false},
		{"age inside range", SavedSearch{MinAge: intPtr(12), MaxAge: intPtr(24)}, true},
		{"age at inclusive bound", SavedSearch{MaxAge: intPtr(18)}, true},
		{"too old", SavedSearch{MaxAge: intPtr(12)}, false},
		{"too young", SavedSearch{MinAge: intPtr(24)}, false},
		{"location mismatch", SavedSearch{Location: []string{"Milano"}}, false},
		{"all fields conjunctive", SavedSearch{
			Species: []string{"Cane"}, Breed: []string{"Labrador"},
			Gender: "M", MaxAge: intPtr(24), Color: []string{"Nero"},
			Location: []string{"Torino"},
		}, true},
		{"one failing field rejects", SavedSearch{
			Species: []string{"Cane"}, Color: []string{"Bianco"},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.search.Matches(fidoSummary()))
		})
	}
}

func TestNewSavedSearch_AgeBounds(t *testing.T) {
	_, err := NewSavedSearch(SavedSearch{MinAge: intPtr(-1)})
	assert.ErrorIs(t, err, ErrInvalidSearch)

	_, err = NewSavedSearch(SavedSearch{MinAge: intPtr(24), MaxAge: intPtr(12)})
	assert.ErrorIs(t, err, ErrInvalidSearch)

	s, err := NewSavedSearch(SavedSearch{MinAge: intPtr(12), MaxAge: intPtr(24)})
	require.NoError(t, err)
	assert.Equal(t, 12, *s.MinAge)
}

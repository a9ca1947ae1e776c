package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	busadapter "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/adapter"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	search "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/domain"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/persistence/repository/adapter"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(i int) *int { return &i }

func TestSaveAndListSearches(t *testing.T) {
	repo := adapter.NewMemSearchRepository()
	save := NewSaveSearchUseCase(repo)
	ctx := context.Background()

	first, err := save.Execute(ctx, SaveSearchInput{
		UserID: "user-1", Species: []string{"Cane"}, MaxAge: intPtr(24),
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = save.Execute(ctx, SaveSearchInput{UserID: "user-2", Species: []string{"Gatto"}})
	require.NoError(t, err)

	mine, err := NewListSearchesUseCase(repo).Execute(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	_, err = save.Execute(ctx, SaveSearchInput{UserID: "user-1", MinAge: intPtr(10), MaxAge: intPtr(5)})
	assert.ErrorIs(t, err, search.ErrInvalidSearch)
}

func TestDeleteSearch_OwnerOnly(t *testing.T) {
	repo := adapter.NewMemSearchRepository()
	saved, err := NewSaveSearchUseCase(repo).Execute(context.Background(),
		SaveSearchInput{UserID: "user-1", Species: []string{"Cane"}})
	require.NoError(t, err)

	uc := NewDeleteSearchUseCase(repo)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Execute(ctx, saved.ID, "user-2"), search.ErrNotSearchOwner)
	require.NoError(t, uc.Execute(ctx, saved.ID, "user-1"))
	assert.ErrorIs(t, uc.Execute(ctx, saved.ID, "user-1"), search.ErrSearchNotFound)
}

func TestMatchPost_FansOutPerUser(t *testing.T) {
	repo := adapter.NewMemSearchRepository()
	save := NewSaveSearchUseCase(repo)
	ctx := context.Background()

	// user-1 matches, twice over: still one notification
	_, err := save.Execute(ctx, SaveSearchInput{UserID: "user-1", Species: []string{"Cane"}})
	require.NoError(t, err)
	_, err = save.Execute(ctx, SaveSearchInput{UserID: "user-1", MaxAge: intPtr(24)})
	require.NoError(t, err)

	// user-2 matches once, user-3 does not match
	_, err = save.Execute(ctx, SaveSearchInput{UserID: "user-2", Location: []string{"Torino"}})
	require.NoError(t, err)
	_, err = save.Execute(ctx, SaveSearchInput{UserID: "user-3", Species: []string{"Gatto"}})
	require.NoError(t, err)

	bus := busadapter.NewMemoryBus(event.DefaultBindings())
	uc := NewMatchPostUseCase(repo, bus, discardLogger())

	userIDs, err := uc.Execute(ctx, event.AdoptionPostSummary{
		ID: "post-1", Name: "Fido", Species: "Cane", Age: 18, Location: "Torino",
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-1", "user-2"}, userIDs)

	events := bus.PublishedWithKey(event.KeySavedSearchMatch)
	require.Len(t, events, 2)
	notified := make([]string, 0, len(events))
	for _, e := range events {
		var m event.SearchMatch
		require.NoError(t, json.Unmarshal(e.Payload, &m))
		assert.Equal(t, "post-1", m.ID)
		notified = append(notified, m.UserID)
	}
	assert.ElementsMatch(t, []string{"user-1", "user-2"}, notified)
}

func TestMatchPost_NoSearches(t *testing.T) {
	repo := adapter.NewMemSearchRepository()
	bus := busadapter.NewMemoryBus(event.DefaultBindings())
	uc := NewMatchPostUseCase(repo, bus, discardLogger())

	userIDs, err := uc.Execute(context.Background(), event.AdoptionPostSummary{ID: "post-1", Species: "Cane"})
	require.NoError(t, err)
	assert.Empty(t, userIDs)
	assert.Empty(t, bus.Published())
}

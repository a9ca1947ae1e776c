package task

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	busadapter "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/adapter"
	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/usecase"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/persistence/repository/adapter"
)

func TestRequestAcceptedTask_ClosesPost(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := adapter.NewMemPostRepository()
	bus := busadapter.NewMemoryBus(event.DefaultBindings())
	ctx := context.Background()

	post, err := usecase.NewCreatePostUseCase(repo, bus, log).Execute(ctx, usecase.CreatePostInput{
		OwnerID: "owner-1", Name: "Fido", Species: "Cane",
	})
	require.NoError(t, err)

	RegisterRequestAcceptedTask(bus.Queue(event.QueueListing), usecase.NewClosePostUseCase(repo), log)

	payload, err := json.Marshal(event.RequestAccepted{
		AdoptionPostID: post.ID, AdopterID: "adopter-1",
	})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(ctx, busport.Event{Key: event.KeyRequestAccepted, Payload: payload}))

	closed, err := repo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, closed.Active)
	require.NotNil(t, closed.AdopterID)
	assert.Equal(t, "adopter-1", *closed.AdopterID)

	// redelivery leaves the post in the same terminal state
	require.NoError(t, bus.Publish(ctx, busport.Event{Key: event.KeyRequestAccepted, Payload: payload}))
	closed, err = repo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, closed.Active)
	assert.Equal(t, "adopter-1", *closed.AdopterID)
}

func TestRequestAcceptedTask_DropsBadEvents(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := adapter.NewMemPostRepository()
	bus := busadapter.NewMemoryBus(event.DefaultBindings())
	ctx := context.Background()

	RegisterRequestAcceptedTask(bus.Queue(event.QueueListing), usecase.NewClosePostUseCase(repo), log)

	// malformed payload: dropped, not retried
	require.NoError(t, bus.Publish(ctx, busport.Event{
		Key: event.KeyRequestAccepted, Payload: []byte("{not json"),
	}))

	// unknown post: dropped, not retried
	payload, err := json.Marshal(event.RequestAccepted{
		AdoptionPostID: "missing-post", AdopterID: "adopter-1",
	})
	require.NoError(t, err)
	assert.NoError(t, bus.Publish(ctx, busport.Event{Key: event.KeyRequestAccepted, Payload: payload}))
}

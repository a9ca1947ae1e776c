package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	busadapter "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/adapter"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	chat "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/domain"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/adapter"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendMessage_CreatesConversationOnFirstContact(t *testing.T) {
	repo := adapter.NewMemChatRepository()
	bus := busadapter.NewMemoryBus(event.DefaultBindings())
	uc := NewSendMessageUseCase(repo, bus, discardLogger())

	msg, err := uc.Execute(context.Background(), SendMessageInput{
		CallerID:       "adopter-1",
		SenderID:       "adopter-1",
		ReceiverID:     "owner-1",
		AdoptionPostID: "post-1",
		Body:           "Is Fido still available?",
	})
	require.NoError(t, err)
	require.NotEmpty(t, msg.ID)
	require.NotEmpty(t, msg.ChatID)

	conv, err := repo.GetConversation(context.Background(), msg.ChatID)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", conv.OwnerID)
	assert.Equal(t, "adopter-1", conv.AdopterID)
	assert.Equal(t, chat.StateNew, conv.State)

	events := bus.PublishedWithKey(event.KeyChatNotification)
	require.Len(t, events, 1)
	var mail event.EmailMessage
	require.NoError(t, json.Unmarshal(events[0].Payload, &mail))
	assert.Equal(t, "owner-1", mail.ReceiverID)
	assert.Equal(t, "adopter-1", mail.SenderID)
	assert.Equal(t, event.TypeNewMessage, mail.Type)
	assert.Equal(t, "Is Fido still available?", mail.Message)
}

func TestSendMessage_ReusesExistingConversation(t *testing.T) {
	repo := adapter.NewMemChatRepository()
	bus := busadapter.NewMemoryBus(event.DefaultBindings())
	uc := NewSendMessageUseCase(repo, bus, discardLogger())

	first, err := uc.Execute(context.Background(), SendMessageInput{
		CallerID: "adopter-1", SenderID: "adopter-1", ReceiverID: "owner-1",
		AdoptionPostID: "post-1", Body: "hello",
	})
	require.NoError(t, err)

	// same triple, no chat id: must land in the same conversation
	second, err := uc.Execute(context.Background(), SendMessageInput{
		CallerID: "adopter-1", SenderID: "adopter-1", ReceiverID: "owner-1",
		AdoptionPostID: "post-1", Body: "anyone there?",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ChatID, second.ChatID)

	// reply addressed by chat id
	reply, err := uc.Execute(context.Background(), SendMessageInput{
		CallerID: "owner-1", SenderID: "owner-1", ReceiverID: "adopter-1",
		ChatID: first.ChatID, Body: "yes, he is",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ChatID, reply.ChatID)

	msgs, err := repo.MessagesByChat(context.Background(), first.ChatID)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)
}

func TestSendMessage_Validation(t *testing.T) {
	repo := adapter.NewMemChatRepository()
	bus := busadapter.NewMemoryBus(event.DefaultBindings())
	uc := NewSendMessageUseCase(repo, bus, discardLogger())
	ctx := context.Background()

	_, err := uc.Execute(ctx, SendMessageInput{
		CallerID: "a", SenderID: "a", ReceiverID: "", AdoptionPostID: "p", Body: "hi",
	})
	assert.ErrorIs(t, err, chat.ErrMissingParticipants)

	_, err = uc.Execute(ctx, SendMessageInput{
		CallerID: "someone-else", SenderID: "a", ReceiverID: "b", AdoptionPostID: "p", Body: "hi",
	})
	assert.ErrorIs(t, err, chat.ErrNotSender)

	_, err = uc.Execute(ctx, SendMessageInput{
		CallerID: "a", SenderID: "a", ReceiverID: "b", Body: "hi",
	})
	assert.ErrorIs(t, err, chat.ErrMissingPost)

	_, err = uc.Execute(ctx, SendMessageInput{
		CallerID: "a", SenderID: "a", ReceiverID: "b", AdoptionPostID: "p", Body: "  ",
	})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)

	_, err = uc.Execute(ctx, SendMessageInput{
		CallerID: "a", SenderID: "a", ReceiverID: "b", ChatID: "missing", Body: "hi",
	})
	assert.ErrorIs(t, err, chat.ErrChatNotFound)

	assert.Empty(t, bus.Published())
}

func TestSendMessage_OutsiderCannotUseChatID(t *testing.T) {
	repo := adapter.NewMemChatRepository()
	bus := busadapter.NewMemoryBus(event.DefaultBindings())
	uc := NewSendMessageUseCase(repo, bus, discardLogger())
	ctx := context.Background()

	first, err := uc.Execute(ctx, SendMessageInput{
		CallerID: "adopter-1", SenderID: "adopter-1", ReceiverID: "owner-1",
		AdoptionPostID: "post-1", Body: "hello",
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, SendMessageInput{
		CallerID: "stranger", SenderID: "stranger", ReceiverID: "owner-1",
		ChatID: first.ChatID, Body: "let me in",
	})
	assert.ErrorIs(t, err, chat.ErrNotMember)
}

func TestSendMessage_ConcurrentFirstContact(t *testing.T) {
	repo := adapter.NewMemChatRepository()
	bus := busadapter.NewMemoryBus(event.DefaultBindings())
	uc := NewSendMessageUseCase(repo, bus, discardLogger())

	const n = 20
	var wg sync.WaitGroup
	chatIDs := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg, err := uc.Execute(context.Background(), SendMessageInput{
				CallerID: "adopter-1", SenderID: "adopter-1", ReceiverID: "owner-1",
				AdoptionPostID: "post-1", Body: fmt.Sprintf("message %d", i),
			})
			if err == nil {
				chatIDs[i] = msg.ChatID
			}
		}(i)
	}
	wg.Wait()

	// all writers land in the same conversation
	for i := 1; i < n; i++ {
		require.Equal(t, chatIDs[0], chatIDs[i])
	}
	msgs, err := repo.MessagesByChat(context.Background(), chatIDs[0])
	require.NoError(t, err)
	assert.Len(t, msgs, n)
}

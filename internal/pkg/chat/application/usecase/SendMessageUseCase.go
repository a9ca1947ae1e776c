package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	chat "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/port"
)

// SendMessageInput carries the data needed to send a new message.
// ChatID is optional: when absent the conversation is looked up by the
// (adopter=sender, owner=receiver, post) key and created if missing.
type SendMessageInput struct {
	CallerID       string
	SenderID       string
	ReceiverID     string
	AdoptionPostID string
	ChatID         string
	Body           string
}

// SendMessageUseCase appends a message to an existing or new conversation
// and emits a new-message notification event.
// One class per use case (own file)
type SendMessageUseCase struct {
	Repo repository.ChatRepository
	Bus  busport.Publisher
	Log  *slog.Logger
}

func NewSendMessageUseCase(repo repository.ChatRepository, bus busport.Publisher, log *slog.Logger) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Bus: bus, Log: log}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.Message, error) {
	if in.SenderID == "" || in.ReceiverID == "" {
		return nil, chat.ErrMissingParticipants
	}
	if in.CallerID != in.SenderID {
		return nil, chat.ErrNotSender
	}

	var conv *chat.Conversation
	var err error
	if in.ChatID != "" {
		conv, err = uc.Repo.GetConversation(ctx, in.ChatID)
		if err != nil {
			return nil, wrapPersistence(err)
		}
		if !conv.IsParticipant(in.SenderID) {
			return nil, chat.ErrNotMember
		}
	} else {
		if in.AdoptionPostID == "" {
			return nil, chat.ErrMissingPost
		}
		// The sender opening a conversation is the adopter; the receiver owns the post.
		conv, err = uc.Repo.GetOrCreateConversation(ctx,
			chat.NewConversation(in.ReceiverID, in.SenderID, in.AdoptionPostID))
		if err != nil {
			return nil, wrapPersistence(err)
		}
	}

	msg, err := chat.NewMessage(conv.ID, in.SenderID, in.ReceiverID, in.Body)
	if err != nil {
		return nil, err
	}
	id, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	msg.ID = id

	publishJSON(ctx, uc.Bus, uc.Log, event.KeyChatNotification, event.EmailMessage{
		ReceiverID: in.ReceiverID,
		SenderID:   in.SenderID,
		Message:    msg.Body,
		Type:       event.TypeNewMessage,
	})
	return msg, nil
}

// wrapPersistence keeps domain sentinels intact while tagging everything
// else as an infrastructure failure.
func wrapPersistence(err error) error {
	if errors.Is(err, chat.ErrChatNotFound) || errors.Is(err, chat.ErrStateConflict) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

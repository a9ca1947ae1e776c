package usecase

import (
	"context"
	"log/slog"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/port"
)

// SendRequestUseCase lets the adopter send the adoption request on a
// conversation, moving it NEW -> REQUESTED.
// One class per use case (own file)
type SendRequestUseCase struct {
	Repo repository.ChatRepository
	Bus  busport.Publisher
	Log  *slog.Logger
}

func NewSendRequestUseCase(repo repository.ChatRepository, bus busport.Publisher, log *slog.Logger) *SendRequestUseCase {
	return &SendRequestUseCase{Repo: repo, Bus: bus, Log: log}
}

func (uc *SendRequestUseCase) Execute(ctx context.Context, chatID, callerID string) error {
	conv, err := uc.Repo.GetConversation(ctx, chatID)
	if err != nil {
		return wrapPersistence(err)
	}
	from := conv.State
	if err := conv.SendRequest(callerID); err != nil {
		return err
	}
	if err := uc.Repo.TransitionState(ctx, chatID, from, conv.State); err != nil {
		return wrapPersistence(err)
	}
	publishJSON(ctx, uc.Bus, uc.Log, event.KeyChatNotification, event.EmailMessage{
		ReceiverID: conv.OwnerID,
		SenderID:   conv.AdopterID,
		Message:    event.RequestActionSend,
		Type:       event.TypeAdoptionRequest,
	})
	return nil
}

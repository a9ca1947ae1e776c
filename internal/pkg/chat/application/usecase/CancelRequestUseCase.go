package usecase

import (
	"context"
	"log/slog"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/port"
)

// CancelRequestUseCase lets the adopter withdraw a pending request, moving
// the conversation REQUESTED -> NEW so a later re-request succeeds.
// One class per use case (own file)
type CancelRequestUseCase struct {
	Repo repository.ChatRepository
	Bus  busport.Publisher
	Log  *slog.Logger
}

func NewCancelRequestUseCase(repo repository.ChatRepository, bus busport.Publisher, log *slog.Logger) *CancelRequestUseCase {
	return &CancelRequestUseCase{Repo: repo, Bus: bus, Log: log}
}

func (uc *CancelRequestUseCase) Execute(ctx context.Context, chatID, callerID string) error {
	conv, err := uc.Repo.GetConversation(ctx, chatID)
	if err != nil {
		return wrapPersistence(err)
	}
	from := conv.State
	if err := conv.CancelRequest(callerID); err != nil {
		return err
	}
	if err := uc.Repo.TransitionState(ctx, chatID, from, conv.State); err != nil {
		return wrapPersistence(err)
	}
	publishJSON(ctx, uc.Bus, uc.Log, event.KeyChatNotification, event.EmailMessage{
		ReceiverID: conv.OwnerID,
		SenderID:   conv.AdopterID,
		Message:    event.RequestActionCancel,
		Type:       event.TypeAdoptionRequest,
	})
	return nil
}

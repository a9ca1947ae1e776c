package usecase

import (
	"context"
	"log/slog"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/port"
)

// RejectRequestUseCase lets the owner reject a pending request, moving the
// conversation REQUESTED -> NEW so the adopter may try again.
// One class per use case (own file)
type RejectRequestUseCase struct {
	Repo repository.ChatRepository
	Bus  busport.Publisher
	Log  *slog.Logger
}

func NewRejectRequestUseCase(repo repository.ChatRepository, bus busport.Publisher, log *slog.Logger) *RejectRequestUseCase {
	return &RejectRequestUseCase{Repo: repo, Bus: bus, Log: log}
}

func (uc *RejectRequestUseCase) Execute(ctx context.Context, chatID, callerID string) error {
	conv, err := uc.Repo.GetConversation(ctx, chatID)
	if err != nil {
		return wrapPersistence(err)
	}
	from := conv.State
	if err := conv.RejectRequest(callerID); err != nil {
		return err
	}
	if err := uc.Repo.TransitionState(ctx, chatID, from, conv.State); err != nil {
		return wrapPersistence(err)
	}
	publishJSON(ctx, uc.Bus, uc.Log, event.KeyChatNotification, event.EmailMessage{
		ReceiverID: conv.AdopterID,
		SenderID:   conv.OwnerID,
		Message:    event.RequestActionReject,
		Type:       event.TypeAdoptionAccept,
	})
	return nil
}

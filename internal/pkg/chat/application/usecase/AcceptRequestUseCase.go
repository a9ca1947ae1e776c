package usecase

import (
	"context"
	"log/slog"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/port"
)

// AcceptRequestUseCase lets the owner accept a pending request, moving the
// conversation REQUESTED -> ACCEPTED (terminal). On success it emits the
// request-accepted event consumed by the listing service plus the
// acceptance notification. The conditional update in the repository makes
// exactly one of two concurrent accepts win.
// One class per use case (own file)
type AcceptRequestUseCase struct {
	Repo repository.ChatRepository
	Bus  busport.Publisher
	Log  *slog.Logger
}

func NewAcceptRequestUseCase(repo repository.ChatRepository, bus busport.Publisher, log *slog.Logger) *AcceptRequestUseCase {
	return &AcceptRequestUseCase{Repo: repo, Bus: bus, Log: log}
}

func (uc *AcceptRequestUseCase) Execute(ctx context.Context, chatID, callerID string) error {
	conv, err := uc.Repo.GetConversation(ctx, chatID)
	if err != nil {
		return wrapPersistence(err)
	}
	from := conv.State
	if err := conv.AcceptRequest(callerID); err != nil {
		return err
	}
	if err := uc.Repo.TransitionState(ctx, chatID, from, conv.State); err != nil {
		return wrapPersistence(err)
	}
	publishJSON(ctx, uc.Bus, uc.Log, event.KeyRequestAccepted, event.RequestAccepted{
		AdoptionPostID: conv.AdoptionPostID,
		AdopterID:      conv.AdopterID,
	})
	publishJSON(ctx, uc.Bus, uc.Log, event.KeyChatNotification, event.EmailMessage{
		ReceiverID: conv.AdopterID,
		SenderID:   conv.OwnerID,
		Message:    event.RequestActionAccept,
		Type:       event.TypeAdoptionAccept,
	})
	return nil
}

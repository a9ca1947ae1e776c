package usecase

import (
	"context"
	"log/slog"

	chat "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/port"
)

// GetUnreadUseCase returns the caller's unread messages of a conversation
// in timestamp order, marking them as seen.
// One class per use case (own file)
type GetUnreadUseCase struct {
	Repo repository.ChatRepository
	Log  *slog.Logger
}

func NewGetUnreadUseCase(repo repository.ChatRepository, log *slog.Logger) *GetUnreadUseCase {
	return &GetUnreadUseCase{Repo: repo, Log: log}
}

func (uc *GetUnreadUseCase) Execute(ctx context.Context, chatID, callerID string) ([]chat.Message, error) {
	conv, err := uc.Repo.GetConversation(ctx, chatID)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	if !conv.IsParticipant(callerID) {
		return nil, chat.ErrNotMember
	}
	msgs, err := uc.Repo.MarkSeenAndListUnread(ctx, chatID, callerID)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return msgs, nil
}

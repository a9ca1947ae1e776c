package usecase

import (
	"context"
	"log/slog"

	chat "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/port"
)

// GetHistoryUseCase returns every message of a conversation in timestamp
// order, marking the caller's unread messages as seen first.
// One class per use case (own file)
type GetHistoryUseCase struct {
	Repo repository.ChatRepository
	Log  *slog.Logger
}

func NewGetHistoryUseCase(repo repository.ChatRepository, log *slog.Logger) *GetHistoryUseCase {
	return &GetHistoryUseCase{Repo: repo, Log: log}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, chatID, callerID string) ([]chat.Message, error) {
	conv, err := uc.Repo.GetConversation(ctx, chatID)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	if !conv.IsParticipant(callerID) {
		return nil, chat.ErrNotMember
	}
	if _, err := uc.Repo.MarkSeenAndListUnread(ctx, chatID, callerID); err != nil {
		return nil, wrapPersistence(err)
	}
	msgs, err := uc.Repo.MessagesByChat(ctx, chatID)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return msgs, nil
}

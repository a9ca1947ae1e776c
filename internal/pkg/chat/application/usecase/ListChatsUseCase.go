package usecase

import (
	"context"

	chat "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/domain"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/port"
)

// ListChatsUseCase returns the user's conversations ordered by most recent
// message descending; conversations without messages sort last. The order
// is computed per request, there is no persisted last-activity field.
// One class per use case (own file)
type ListChatsUseCase struct {
	Repo repository.ChatRepository
}

func NewListChatsUseCase(repo repository.ChatRepository) *ListChatsUseCase {
	return &ListChatsUseCase{Repo: repo}
}

func (uc *ListChatsUseCase) Execute(ctx context.Context, userID string) ([]chat.Conversation, error) {
	chats, err := uc.Repo.ChatsForUser(ctx, userID)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return chats, nil
}

package repository

import (
	"context"

	chat "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/domain"
)

// ChatRepository defines persistence operations for the chat context.
//
// Implementations must serialize state mutations per conversation:
// TransitionState succeeds only when the stored state still equals `from`,
// so two concurrent accepts produce exactly one winner. GetOrCreate must
// guarantee at most one conversation per (owner, adopter, post) key; the
// loser of a creation race reads back the winner's row.
type ChatRepository interface {
	// GetConversation returns chat.ErrChatNotFound when no such row exists.
	GetConversation(ctx context.Context, id string) (*chat.Conversation, error)

	// GetOrCreateConversation finds the conversation for c's
	// (owner, adopter, post) key, creating it when missing.
	GetOrCreateConversation(ctx context.Context, c chat.Conversation) (*chat.Conversation, error)

	// TransitionState applies from -> to on the conversation, returning
	// chat.ErrStateConflict when the stored state is no longer `from` and
	// chat.ErrChatNotFound when the row is missing.
	TransitionState(ctx context.Context, id string, from, to chat.RequestState) error

	// SaveMessage persists a message and returns its generated id.
	SaveMessage(ctx context.Context, m chat.Message) (string, error)

	// MessagesByChat returns all messages of a conversation, timestamp ascending.
	MessagesByChat(ctx context.Context, chatID string) ([]chat.Message, error)

	// MarkSeenAndListUnread flips seen on every unread message addressed to
	// receiverID in the conversation and returns those messages, timestamp
	// ascending, in their pre-flip form except for Seen which reads true.
	MarkSeenAndListUnread(ctx context.Context, chatID, receiverID string) ([]chat.Message, error)

	// ChatsForUser returns every conversation where the user is owner or
	// adopter, ordered by most recent message descending; conversations
	// without messages sort last.
	ChatsForUser(ctx context.Context, userID string) ([]chat.Conversation, error)
}

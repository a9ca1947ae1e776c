package adapter

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	chat "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/domain"
)

// MemChatRepository is an in-memory ChatRepository for tests and dev runs.
// A single mutex serializes every mutation, which gives the same
// one-winner semantics the Postgres adapter gets from its uniqueness
// constraint and conditional updates.
type MemChatRepository struct {
	mu            sync.Mutex
	conversations map[string]chat.Conversation
	byKey         map[convKey]string
	messages      map[string][]chat.Message // chatID -> messages, insertion order
}

type convKey struct {
	ownerID   string
	adopterID string
	postID    string
}

func NewMemChatRepository() *MemChatRepository {
	return &MemChatRepository{
		conversations: make(map[string]chat.Conversation),
		byKey:         make(map[convKey]string),
		messages:      make(map[string][]chat.Message),
	}
}

func (r *MemChatRepository) GetConversation(ctx context.Context, id string) (*chat.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conversations[id]
	if !ok {
		return nil, chat.ErrChatNotFound
	}
	return &c, nil
}

func (r *MemChatRepository) GetOrCreateConversation(ctx context.Context, c chat.Conversation) (*chat.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := convKey{c.OwnerID, c.AdopterID, c.AdoptionPostID}
	if id, ok := r.byKey[key]; ok {
		existing := r.conversations[id]
		return &existing, nil
	}
	c.ID = uuid.NewString()
	r.conversations[c.ID] = c
	r.byKey[key] = c.ID
	return &c, nil
}

func (r *MemChatRepository) TransitionState(ctx context.Context, id string, from, to chat.RequestState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conversations[id]
	if !ok {
		return chat.ErrChatNotFound
	}
	if c.State != from {
		return chat.ErrStateConflict
	}
	c.State = to
	r.conversations[id] = c
	return nil
}

func (r *MemChatRepository) SaveMessage(ctx context.Context, m chat.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conversations[m.ChatID]; !ok {
		return "", chat.ErrChatNotFound
	}
	m.ID = uuid.NewString()
	r.messages[m.ChatID] = append(r.messages[m.ChatID], m)
	return m.ID, nil
}

func (r *MemChatRepository) MessagesByChat(ctx context.Context, chatID string) ([]chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]chat.Message, len(r.messages[chatID]))
	copy(out, r.messages[chatID])
	sortByTimestamp(out)
	return out, nil
}

func (r *MemChatRepository) MarkSeenAndListUnread(ctx context.Context, chatID, receiverID string) ([]chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []chat.Message
	msgs := r.messages[chatID]
	for i := range msgs {
		if msgs[i].ReceiverID == receiverID && !msgs[i].Seen {
			msgs[i].Seen = true
			out = append(out, msgs[i])
		}
	}
	sortByTimestamp(out)
	return out, nil
}

func (r *MemChatRepository) ChatsForUser(ctx context.Context, userID string) ([]chat.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	type entry struct {
		conv chat.Conversation
		last *time.Time
	}
	var entries []entry
	for id, c := range r.conversations {
		if c.OwnerID != userID && c.AdopterID != userID {
			continue
		}
		e := entry{conv: c}
		for _, m := range r.messages[id] {
			if e.last == nil || m.Timestamp.After(*e.last) {
				ts := m.Timestamp
				e.last = &ts
			}
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].last, entries[j].last
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	out := make([]chat.Conversation, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.conv)
	}
	return out, nil
}

func sortByTimestamp(msgs []chat.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
}

package chat

import (
	"strings"
	"time"
)

// Message is an immutable log entry in a conversation. Only Seen is ever
// mutated, flipped to true when the receiver reads the message.
type Message struct {
	ID         string    `db:"id" json:"id"`
	ChatID     string    `db:"chat_id" json:"chatId"`
	SenderID   string    `db:"sender_id" json:"senderId"`
	ReceiverID string    `db:"receiver_id" json:"receiverId"`
	Body       string    `db:"body" json:"message"`
	Timestamp  time.Time `db:"time_stamp" json:"timeStamp"`
	Seen       bool      `db:"seen" json:"seen"`
}

// NewMessage validates and normalizes a message ready to persist.
func NewMessage(chatID, senderID, receiverID, body string) (*Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	return &Message{
		ChatID:     chatID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		Timestamp:  time.Now().UTC(),
		Seen:       false,
	}, nil
}

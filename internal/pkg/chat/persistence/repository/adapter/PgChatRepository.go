package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/domain"
)

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

// Migrate creates the chat schema when it does not exist yet.
func (r *PgChatRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE SCHEMA IF NOT EXISTS chat;
		CREATE TABLE IF NOT EXISTS chat.conversation (
			id               uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			owner_id         text NOT NULL,
			adopter_id       text NOT NULL,
			adoption_post_id text NOT NULL,
			state            text NOT NULL DEFAULT 'NEW',
			created_at       timestamptz NOT NULL DEFAULT now(),
			UNIQUE (owner_id, adopter_id, adoption_post_id)
		);
		CREATE TABLE IF NOT EXISTS chat.message (
			id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			chat_id     uuid NOT NULL REFERENCES chat.conversation(id),
			sender_id   text NOT NULL,
			receiver_id text NOT NULL,
			body        text NOT NULL,
			time_stamp  timestamptz NOT NULL,
			seen        boolean NOT NULL DEFAULT false
		);
		CREATE INDEX IF NOT EXISTS message_chat_ts ON chat.message (chat_id, time_stamp);
	`)
	return err
}

func (r *PgChatRepository) GetConversation(ctx context.Context, id string) (*chat.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	var c chat.Conversation
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, owner_id, adopter_id, adoption_post_id, state, created_at
		FROM chat.conversation WHERE id = $1::uuid
	`, id).Scan(&c.ID, &c.OwnerID, &c.AdopterID, &c.AdoptionPostID, &c.State, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, chat.ErrChatNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateConversation inserts with ON CONFLICT DO NOTHING and re-reads,
// so a creation race has exactly one winner and no caller fails.
func (r *PgChatRepository) GetOrCreateConversation(ctx context.Context, c chat.Conversation) (*chat.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO chat.conversation (owner_id, adopter_id, adoption_post_id, state, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_id, adopter_id, adoption_post_id) DO NOTHING
	`, c.OwnerID, c.AdopterID, c.AdoptionPostID, c.State, c.CreatedAt)
	if err != nil {
		return nil, err
	}
	var out chat.Conversation
	err = r.pool.QueryRow(ctx, `
		SELECT id::text, owner_id, adopter_id, adoption_post_id, state, created_at
		FROM chat.conversation
		WHERE owner_id = $1 AND adopter_id = $2 AND adoption_post_id = $3
	`, c.OwnerID, c.AdopterID, c.AdoptionPostID).
		Scan(&out.ID, &out.OwnerID, &out.AdopterID, &out.AdoptionPostID, &out.State, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TransitionState is a conditional update: zero rows affected means the
// stored state moved under us (or the row vanished), which callers surface
// as a precondition failure.
func (r *PgChatRepository) TransitionState(ctx context.Context, id string, from, to chat.RequestState) error {
	if r == nil || r.pool == nil {
		return errors.New("PgChatRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE chat.conversation SET state = $3
		WHERE id = $1::uuid AND state = $2
	`, id, from, to)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM chat.conversation WHERE id = $1::uuid)", id,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return chat.ErrChatNotFound
		}
		return chat.ErrStateConflict
	}
	return nil
}

func (r *PgChatRepository) SaveMessage(ctx context.Context, m chat.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgChatRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chat.message (chat_id, sender_id, receiver_id, body, time_stamp, seen)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, m.ChatID, m.SenderID, m.ReceiverID, m.Body, m.Timestamp, m.Seen).Scan(&id)
	return id, err
}

func (r *PgChatRepository) MessagesByChat(ctx context.Context, chatID string) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, chat_id::text, sender_id, receiver_id, body, time_stamp, seen
		FROM chat.message
		WHERE chat_id = $1::uuid
		ORDER BY time_stamp ASC
	`, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *PgChatRepository) MarkSeenAndListUnread(ctx context.Context, chatID, receiverID string) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		WITH marked AS (
			UPDATE chat.message SET seen = true
			WHERE chat_id = $1::uuid AND receiver_id = $2 AND seen = false
			RETURNING id, chat_id, sender_id, receiver_id, body, time_stamp, seen
		)
		SELECT id::text, chat_id::text, sender_id, receiver_id, body, time_stamp, seen
		FROM marked ORDER BY time_stamp ASC
	`, chatID, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *PgChatRepository) ChatsForUser(ctx context.Context, userID string) ([]chat.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT c.id::text, c.owner_id, c.adopter_id, c.adoption_post_id, c.state, c.created_at
		FROM chat.conversation c
		LEFT JOIN LATERAL (
			SELECT m.time_stamp FROM chat.message m
			WHERE m.chat_id = c.id
			ORDER BY m.time_stamp DESC LIMIT 1
		) last ON true
		WHERE c.owner_id = $1 OR c.adopter_id = $1
		ORDER BY last.time_stamp DESC NULLS LAST
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chat.Conversation
	for rows.Next() {
		var c chat.Conversation
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.AdopterID, &c.AdoptionPostID, &c.State, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanMessages(rows pgx.Rows) ([]chat.Message, error) {
	var msgs []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.ReceiverID, &m.Body, &m.Timestamp, &m.Seen); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

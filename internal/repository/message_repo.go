package repository

import (
	"context"
	"database/sql"

	"mind-journal/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) error
	ListByConversationID(ctx context.Context, conversationID string) ([]domain.Message, error)
}

type SQLiteMessageRepository struct {
	db *sql.DB
}

func NewSQLiteMessageRepository(db *sql.DB) *SQLiteMessageRepository {
	return &SQLiteMessageRepository{db: db}
}

func (r *SQLiteMessageRepository) Create(ctx context.Context, message domain.Message) error {
	const query = `
		INSERT INTO messages (id, conversation_id, role, content, sentiment, sentiment_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var sentiment interface{}
	var score interface{}
	if message.Sentiment != nil {
		sentiment = string(*message.Sentiment)
	}
	if message.SentimentScore != nil {
		score = *message.SentimentScore
	}

	return withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query,
			message.ID,
			message.ConversationID,
			message.Role,
			message.Content,
			sentiment,
			score,
			message.CreatedAt,
		)
		return err
	})
}

func (r *SQLiteMessageRepository) ListByConversationID(ctx context.Context, conversationID string) ([]domain.Message, error) {
	const query = `
		SELECT id, conversation_id, role, content, sentiment, sentiment_score, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var sentiment sql.NullString
		var score sql.NullFloat64

		err = rows.Scan(
			&msg.ID,
			&msg.ConversationID,
			&msg.Role,
			&msg.Content,
			&sentiment,
			&score,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if sentiment.Valid {
			e := domain.Emotion(sentiment.String)
			msg.Sentiment = &e
		}
		if score.Valid {
			v := score.Float64
			msg.SentimentScore = &v
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

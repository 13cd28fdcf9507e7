package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mind-journal/internal/domain"
)

// ErrNotFound se devuelve cuando la fila pedida no existe.
var ErrNotFound = errors.New("not found")

type ConversationRepository interface {
	Create(ctx context.Context, conv domain.Conversation) error
	GetByID(ctx context.Context, id string) (domain.Conversation, error)
	List(ctx context.Context) ([]domain.Conversation, error)
	Rename(ctx context.Context, id, title string) error
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type SQLiteConversationRepository struct {
	db *sql.DB
}

func NewSQLiteConversationRepository(db *sql.DB) *SQLiteConversationRepository {
	return &SQLiteConversationRepository{db: db}
}

func (r *SQLiteConversationRepository) Create(ctx context.Context, conv domain.Conversation) error {
	const query = `
		INSERT INTO conversations (id, title, created_at, last_updated)
		VALUES (?, ?, ?, ?)
	`
	return withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query,
			conv.ID,
			conv.Title,
			conv.CreatedAt,
			conv.LastUpdated,
		)
		return err
	})
}

func (r *SQLiteConversationRepository) GetByID(ctx context.Context, id string) (domain.Conversation, error) {
	const query = `
		SELECT id, title, created_at, last_updated
		FROM conversations
		WHERE id = ?
	`
	var conv domain.Conversation
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&conv.ID,
		&conv.Title,
		&conv.CreatedAt,
		&conv.LastUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Conversation{}, ErrNotFound
	}
	return conv, err
}

func (r *SQLiteConversationRepository) List(ctx context.Context) ([]domain.Conversation, error) {
	const query = `
		SELECT id, title, created_at, last_updated
		FROM conversations
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []domain.Conversation
	for rows.Next() {
		var conv domain.Conversation
		if err := rows.Scan(&conv.ID, &conv.Title, &conv.CreatedAt, &conv.LastUpdated); err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}
	return conversations, rows.Err()
}

func (r *SQLiteConversationRepository) Rename(ctx context.Context, id, title string) error {
	const query = `UPDATE conversations SET title = ? WHERE id = ?`
	return withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, title, id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
}

// Touch actualiza last_updated. Es responsabilidad del orquestador
// llamarlo al cerrar el turno; appendear mensajes no lo hace solo.
func (r *SQLiteConversationRepository) Touch(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE conversations SET last_updated = ? WHERE id = ?`
	return withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, at, id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
}

// Delete borra los mensajes y luego la conversacion dentro de una
// transaccion: nunca quedan mensajes huerfanos, ni bajo interrupcion.
func (r *SQLiteConversationRepository) Delete(ctx context.Context, id string) error {
	return withRetry(ctx, func() error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE conversation_id = ?`, id); err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete conversation: %w", err)
		}
		if err := requireAffected(res); err != nil {
			return err
		}
		return tx.Commit()
	})
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/analytics-bot-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-bot-api/internal/domain"
)

const messagesTable = "messages"

type MessageRepository interface {
	Save(ctx context.Context, fromNumber, text, direction string) error
	ListRecent(ctx context.Context, limit int) ([]*domain.Message, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type messageRepository struct {
	conn *postgres.Connection
}

func NewMessageRepository(conn *postgres.Connection) MessageRepository {
	return &messageRepository{
		conn: conn,
	}
}

func (r *messageRepository) Save(ctx context.Context, fromNumber, text, direction string) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(messagesTable).
		Columns("from_number", "message_text", "direction").
		Values(fromNumber, text, direction).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar mensagem: %w", err)
	}

	return nil
}

func (r *messageRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Message, error) {
	query, args, err := squirrel.
		Select("id", "from_number", "message_text", "direction", "created_at").
		From(messagesTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		msg := &domain.Message{}
		if err := rows.Scan(&msg.ID, &msg.FromNumber, &msg.Text, &msg.Direction, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear mensagem: %w", err)
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(messagesTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/analytics-bot-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-bot-api/internal/domain"
)

const userSelectionsTable = "user_selections"

// UserSelectionRepository é a memória durável de um slot por usuário:
// a última métrica escolhida no menu.
type UserSelectionRepository interface {
	// Get retorna a última métrica escolhida pelo usuário, ou nil se o
	// usuário nunca escolheu uma opção do menu.
	Get(ctx context.Context, userNumber string) (*domain.Metric, error)
	// Set grava a escolha do usuário. Upsert idempotente, última escrita
	// vence, sem histórico.
	Set(ctx context.Context, userNumber string, metric domain.Metric) error
}

type userSelectionRepository struct {
	conn *postgres.Connection
}

func NewUserSelectionRepository(conn *postgres.Connection) UserSelectionRepository {
	return &userSelectionRepository{
		conn: conn,
	}
}

func (r *userSelectionRepository) Get(ctx context.Context, userNumber string) (*domain.Metric, error) {
	query, args, err := squirrel.
		Select("last_metric").
		From(userSelectionsTable).
		Where(squirrel.Eq{"user_number": userNumber}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var stored string
	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&stored); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar seleção do usuário: %w", err)
	}

	metric, err := domain.ParseMetric(stored)
	if err != nil {
		// Valor fora do conjunto fechado gravado no banco indica corrupção,
		// não uma seleção válida.
		return nil, fmt.Errorf("seleção armazenada inválida para %s: %w", userNumber, err)
	}

	return &metric, nil
}

func (r *userSelectionRepository) Set(ctx context.Context, userNumber string, metric domain.Metric) error {
	if !metric.Valid() {
		return fmt.Errorf("repository: métrica inválida na seleção: %q", string(metric))
	}

	query := squirrel.StatementBuilder.
		Insert(userSelectionsTable).
		Columns("user_number", "last_metric").
		Values(userNumber, string(metric)).
		Suffix(`
			ON CONFLICT (user_number) DO UPDATE SET
				last_metric = EXCLUDED.last_metric,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar seleção do usuário: %w", err)
	}

	return nil
}

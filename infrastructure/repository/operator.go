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

const operatorsTable = "operators"

type OperatorRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Operator, error)
	Create(ctx context.Context, operator *domain.Operator) error
	Count(ctx context.Context) (int, error)
}

type operatorRepository struct {
	conn *postgres.Connection
}

func NewOperatorRepository(conn *postgres.Connection) OperatorRepository {
	return &operatorRepository{
		conn: conn,
	}
}

func (r *operatorRepository) GetByEmail(ctx context.Context, email string) (*domain.Operator, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "password_hash", "created_at").
		From(operatorsTable).
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	operator := &domain.Operator{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&operator.ID,
		&operator.Name,
		&operator.Email,
		&operator.PasswordHash,
		&operator.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar operador: %w", err)
	}

	return operator, nil
}

func (r *operatorRepository) Create(ctx context.Context, operator *domain.Operator) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(operatorsTable).
		Columns("id", "name", "email", "password_hash").
		Values(operator.ID, operator.Name, operator.Email, operator.PasswordHash).
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
		return fmt.Errorf("erro ao criar operador: %w", err)
	}

	return nil
}

func (r *operatorRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(operatorsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar operadores: %w", err)
	}

	return count, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/analytics-bot-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-bot-api/internal/domain"
)

const financialsTable = "financials"

type FinancialRepository interface {
	// SumMetric soma a coluna da métrica sobre os registros da empresa no
	// intervalo de datas. Intervalo sem registros soma zero, nunca erro.
	SumMetric(ctx context.Context, metric domain.Metric, companyID int, from, to time.Time) (decimal.Decimal, error)
	CountRecords(ctx context.Context) (int, error)
}

type financialRepository struct {
	conn *postgres.Connection
}

func NewFinancialRepository(conn *postgres.Connection) FinancialRepository {
	return &financialRepository{
		conn: conn,
	}
}

func (r *financialRepository) SumMetric(ctx context.Context, metric domain.Metric, companyID int, from, to time.Time) (decimal.Decimal, error) {
	// Allowlist na fronteira do acessor: uma métrica fora do conjunto
	// fechado aqui é violação de contrato do chamador, nunca chega ao SQL.
	column, err := metric.Column()
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: métrica inválida no acessor: %w", err)
	}

	query, args, err := squirrel.
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", column)).
		From(financialsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.GtOrEq{"date": from.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": to.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&total); err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("erro ao somar métrica %s: %w", metric, err)
	}

	return total, nil
}

func (r *financialRepository) CountRecords(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(financialsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros financeiros: %w", err)
	}

	return count, nil
}

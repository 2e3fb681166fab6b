// Package migration prepara o esquema do banco na subida da aplicação:
// cria as tabelas quando não existem e insere os dados de exemplo uma
// única vez.
package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-bot-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository"
	"github.com/vfg2006/analytics-bot-api/internal/config"
	"github.com/vfg2006/analytics-bot-api/internal/domain"
	"github.com/vfg2006/analytics-bot-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS messages (
		id SERIAL PRIMARY KEY,
		from_number TEXT NOT NULL,
		message_text TEXT NOT NULL,
		direction TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS financials (
		id SERIAL PRIMARY KEY,
		date DATE NOT NULL,
		company_id INT NOT NULL,
		name TEXT NOT NULL,
		revenue NUMERIC,
		cogs NUMERIC,
		ebitda NUMERIC,
		sales NUMERIC,
		inventory NUMERIC
	)`,
	`CREATE TABLE IF NOT EXISTS user_selections (
		user_number TEXT PRIMARY KEY,
		last_metric TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS operators (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

// Registros financeiros de exemplo: uma empresa, janeiro a março de 2024 e 2025.
var seedFinancials = []domain.FinancialRecord{
	{Date: date(2025, 1, 15), CompanyID: 100, Name: "Global Ops", Revenue: amount(1000000), COGS: amount(400000), EBITDA: amount(600000), Sales: amount(500000), Inventory: amount(100)},
	{Date: date(2025, 2, 15), CompanyID: 100, Name: "Global Ops", Revenue: amount(1200000), COGS: amount(500000), EBITDA: amount(700000), Sales: amount(600000), Inventory: amount(200)},
	{Date: date(2025, 3, 15), CompanyID: 100, Name: "Global Ops", Revenue: amount(1300000), COGS: amount(550000), EBITDA: amount(750000), Sales: amount(300000), Inventory: amount(300)},
	{Date: date(2024, 1, 15), CompanyID: 100, Name: "Global Ops", Revenue: amount(900000), COGS: amount(380000), EBITDA: amount(520000), Sales: amount(200000), Inventory: amount(400)},
	{Date: date(2024, 2, 15), CompanyID: 100, Name: "Global Ops", Revenue: amount(950000), COGS: amount(400000), EBITDA: amount(550000), Sales: amount(100000), Inventory: amount(500)},
	{Date: date(2024, 3, 15), CompanyID: 100, Name: "Global Ops", Revenue: amount(1000000), COGS: amount(420000), EBITDA: amount(580000), Sales: amount(500000), Inventory: amount(600)},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Run cria o esquema e insere os dados iniciais quando necessário.
func Run(ctx context.Context, conn *postgres.Connection, cfg *config.Config) error {
	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar esquema: %w", err)
		}
	}

	if err := seedFinancialData(ctx, conn); err != nil {
		return err
	}

	if err := seedAdminOperator(ctx, conn, cfg); err != nil {
		return err
	}

	logrus.Info("Esquema do banco pronto (messages, financials, user_selections, operators)")
	return nil
}

func seedFinancialData(ctx context.Context, conn *postgres.Connection) error {
	count, err := repository.NewFinancialRepository(conn).CountRecords(ctx)
	if err != nil {
		return fmt.Errorf("erro ao verificar registros financeiros: %w", err)
	}

	if count > 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("financials").
		Columns("date", "company_id", "name", "revenue", "cogs", "ebitda", "sales", "inventory").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range seedFinancials {
		builder = builder.Values(
			record.Date.Format(time.DateOnly),
			record.CompanyID,
			record.Name,
			record.Revenue,
			record.COGS,
			record.EBITDA,
			record.Sales,
			record.Inventory,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de seed: %w", err)
	}

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir dados financeiros de exemplo: %w", err)
	}

	logrus.Info("Dados financeiros de exemplo inseridos")
	return nil
}

// seedAdminOperator cria o operador administrativo inicial a partir da
// configuração. Roda apenas com a tabela vazia e senha configurada.
func seedAdminOperator(ctx context.Context, conn *postgres.Connection, cfg *config.Config) error {
	if cfg.Admin.Password == "" {
		return nil
	}

	operatorRepo := repository.NewOperatorRepository(conn)

	count, err := operatorRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("erro ao verificar operadores: %w", err)
	}

	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("erro ao gerar hash da senha do admin: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID do operador: %w", err)
	}

	operator := &domain.Operator{
		ID:           id,
		Name:         "Admin",
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
	}

	if err := operatorRepo.Create(ctx, operator); err != nil {
		return fmt.Errorf("erro ao criar operador admin: %w", err)
	}

	logrus.WithField("email", operator.Email).Info("Operador admin inicial criado")
	return nil
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialRecord é um registro financeiro mensal de uma empresa.
// Dados de referência imutáveis, carregados uma única vez.
type FinancialRecord struct {
	ID        int             `json:"id"`
	Date      time.Time       `json:"date"`
	CompanyID int             `json:"company_id"`
	Name      string          `json:"name"`
	Revenue   decimal.Decimal `json:"revenue"`
	COGS      decimal.Decimal `json:"cogs"`
	EBITDA    decimal.Decimal `json:"ebitda"`
	Sales     decimal.Decimal `json:"sales"`
	Inventory decimal.Decimal `json:"inventory"`
}

// MonthRange é o intervalo de datas derivado de uma consulta "MM/YY to MM/YY":
// do primeiro dia do mês inicial ao último dia do mês final.
type MonthRange struct {
	From time.Time
	To   time.Time
}

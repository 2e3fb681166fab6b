package domain

import (
	"fmt"
	"strings"
)

// Metric é o conjunto fechado de métricas financeiras consultáveis.
// Nenhum valor fora deste conjunto pode chegar à camada de consulta.
type Metric string

const (
	MetricEBITDA    Metric = "ebitda"
	MetricRevenue   Metric = "revenue"
	MetricSales     Metric = "sales"
	MetricCOGS      Metric = "cogs"
	MetricInventory Metric = "inventory"
)

// ReportMetrics é a ordem canônica do relatório com múltiplas métricas.
// A ordem das linhas da resposta é fixa, independente da ordem de cálculo.
var ReportMetrics = []Metric{
	MetricEBITDA,
	MetricRevenue,
	MetricSales,
	MetricInventory,
}

// menuOptions mapeia as opções do menu "1".."4" para as métricas, nesta
// ordem literal. O mapeamento é um contrato público com o usuário final.
var menuOptions = map[string]Metric{
	"1": MetricEBITDA,
	"2": MetricRevenue,
	"3": MetricSales,
	"4": MetricInventory,
}

var ErrUnknownMetric = fmt.Errorf("unknown metric")

// ParseMetric converte texto em uma métrica do conjunto fechado,
// ignorando maiúsculas/minúsculas.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
	return m, nil
}

// MetricFromMenuOption resolve uma opção de menu ("1".."4") para a métrica
// correspondente. Retorna false para qualquer outro texto.
func MetricFromMenuOption(option string) (Metric, bool) {
	m, ok := menuOptions[option]
	return m, ok
}

// Valid informa se a métrica pertence ao conjunto fechado.
func (m Metric) Valid() bool {
	switch m {
	case MetricEBITDA, MetricRevenue, MetricSales, MetricCOGS, MetricInventory:
		return true
	}
	return false
}

// Column retorna a coluna da tabela financials correspondente à métrica.
// Funciona como allowlist: é a única forma de uma métrica virar SQL.
func (m Metric) Column() (string, error) {
	switch m {
	case MetricEBITDA:
		return "ebitda", nil
	case MetricRevenue:
		return "revenue", nil
	case MetricSales:
		return "sales", nil
	case MetricCOGS:
		return "cogs", nil
	case MetricInventory:
		return "inventory", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, string(m))
}

// Label retorna o nome da métrica em caixa alta, como exibido nos relatórios.
func (m Metric) Label() string {
	return strings.ToUpper(string(m))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Metric
		hasError bool
	}{
		{
			name:     "Nome em minúsculas",
			input:    "ebitda",
			expected: MetricEBITDA,
		},
		{
			name:     "Nome em maiúsculas",
			input:    "REVENUE",
			expected: MetricRevenue,
		},
		{
			name:     "Caixa mista",
			input:    "Sales",
			expected: MetricSales,
		},
		{
			name:     "Espaços ao redor",
			input:    "  cogs  ",
			expected: MetricCOGS,
		},
		{
			name:     "Inventory",
			input:    "inventory",
			expected: MetricInventory,
		},
		{
			name:     "Métrica desconhecida deve retornar erro",
			input:    "profit",
			hasError: true,
		},
		{
			name:     "Texto vazio deve retornar erro",
			input:    "",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseMetric(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownMetric)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestMetricFromMenuOption(t *testing.T) {
	// O mapeamento das opções é contrato com o usuário final: a ordem
	// literal do menu nunca muda.
	expected := map[string]Metric{
		"1": MetricEBITDA,
		"2": MetricRevenue,
		"3": MetricSales,
		"4": MetricInventory,
	}

	for option, metric := range expected {
		result, ok := MetricFromMenuOption(option)
		assert.True(t, ok, "opção %s deve mapear para uma métrica", option)
		assert.Equal(t, metric, result)
	}

	for _, option := range []string{"0", "5", "10", "one", "", "1️⃣"} {
		_, ok := MetricFromMenuOption(option)
		assert.False(t, ok, "opção %q não deve mapear para métrica alguma", option)
	}
}

func TestMetric_Column(t *testing.T) {
	tests := []struct {
		name     string
		metric   Metric
		expected string
		hasError bool
	}{
		{name: "EBITDA", metric: MetricEBITDA, expected: "ebitda"},
		{name: "Revenue", metric: MetricRevenue, expected: "revenue"},
		{name: "Sales", metric: MetricSales, expected: "sales"},
		{name: "COGS", metric: MetricCOGS, expected: "cogs"},
		{name: "Inventory", metric: MetricInventory, expected: "inventory"},
		{
			name:     "Valor fora do conjunto não vira coluna",
			metric:   Metric("revenue; DROP TABLE financials"),
			hasError: true,
		},
		{
			name:     "Métrica vazia não vira coluna",
			metric:   Metric(""),
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, err := tt.metric.Column()

			if tt.hasError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownMetric)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, column)
			}
		})
	}
}

func TestMetric_Label(t *testing.T) {
	assert.Equal(t, "EBITDA", MetricEBITDA.Label())
	assert.Equal(t, "REVENUE", MetricRevenue.Label())
	assert.Equal(t, "INVENTORY", MetricInventory.Label())
}

func TestReportMetricsOrder(t *testing.T) {
	// COGS é consultável por texto mas não entra no relatório completo.
	assert.Equal(t, []Metric{MetricEBITDA, MetricRevenue, MetricSales, MetricInventory}, ReportMetrics)
	assert.NotContains(t, ReportMetrics, MetricCOGS)
}

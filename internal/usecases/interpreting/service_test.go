package interpreting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/analytics-bot-api/internal/config"
	"github.com/vfg2006/analytics-bot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockFinancialRepo := mocks.NewMockFinancialRepository(ctrl)
	mockSelectionRepo := mocks.NewMockUserSelectionRepository(ctrl)

	cfg := &config.Config{
		Analytics: config.Analytics{CompanyID: 100},
	}

	// Service
	service := &Service{
		cfg:           cfg,
		financialRepo: mockFinancialRepo,
		selectionRepo: mockSelectionRepo,
	}

	// Intervalo de referência das consultas: "01/25 to 03/25"
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	sender := "919876543210"

	tests := []struct {
		name     string
		text     string
		setup    func()
		expected string
	}{
		{
			name: "Métrica com intervalo - deve somar apenas a métrica citada",
			text: "EBITDA 01/25 to 03/25",
			setup: func() {
				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricEBITDA, 100, from, to).
					Return(decimal.NewFromInt(1150000), nil)
			},
			expected: "📊 EBITDA Report (01/2025 → 03/2025): ₹1,150,000",
		},
		{
			name: "Métrica com intervalo em minúsculas - classificação não diferencia caixa",
			text: "revenue 01/25 to 03/25",
			setup: func() {
				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricRevenue, 100, from, to).
					Return(decimal.NewFromInt(1550000), nil)
			},
			expected: "📊 REVENUE Report (01/2025 → 03/2025): ₹1,550,000",
		},
		{
			name: "Métrica com intervalo tem precedência sobre a memória de seleção",
			text: "COGS 01/25 to 03/25",
			setup: func() {
				// A memória de seleção não é consultada: o texto já nomeia a métrica.
				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricCOGS, 100, from, to).
					Return(decimal.NewFromInt(640000), nil)
			},
			expected: "📊 COGS Report (01/2025 → 03/2025): ₹640,000",
		},
		{
			name: "Intervalo puro sem seleção anterior - deve montar o relatório completo",
			text: "01/25 to 03/25",
			setup: func() {
				mockSelectionRepo.EXPECT().
					Get(gomock.Any(), sender).
					Return(nil, nil)

				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricEBITDA, 100, from, to).
					Return(decimal.NewFromInt(1150000), nil)
				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricRevenue, 100, from, to).
					Return(decimal.NewFromInt(1550000), nil)
				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricSales, 100, from, to).
					Return(decimal.NewFromInt(1250000), nil)
				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricInventory, 100, from, to).
					Return(decimal.NewFromInt(1040), nil)
			},
			expected: "📊 Report (01/2025 → 03/2025)\n" +
				"EBITDA: ₹1,150,000\n" +
				"Revenue: ₹1,550,000\n" +
				"Sales: ₹1,250,000\n" +
				"Inventory: 1,040",
		},
		{
			name: "Intervalo puro com seleção anterior - deve reportar só a métrica escolhida",
			text: "01/25 to 03/25",
			setup: func() {
				selected := domain.MetricSales
				mockSelectionRepo.EXPECT().
					Get(gomock.Any(), sender).
					Return(&selected, nil)

				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricSales, 100, from, to).
					Return(decimal.NewFromInt(1250000), nil)
			},
			expected: "📊 SALES Report (01/2025 → 03/2025): ₹1,250,000",
		},
		{
			name: "Intervalo sem registros - deve responder zero, não erro",
			text: "05/25 to 06/25",
			setup: func() {
				selected := domain.MetricEBITDA
				mockSelectionRepo.EXPECT().
					Get(gomock.Any(), sender).
					Return(&selected, nil)

				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricEBITDA, 100,
						time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
						time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)).
					Return(decimal.Zero, nil)
			},
			expected: "📊 EBITDA Report (05/2025 → 06/2025): ₹0",
		},
		{
			name: "Opção de menu - deve gravar a seleção e confirmar",
			text: "1",
			setup: func() {
				mockSelectionRepo.EXPECT().
					Set(gomock.Any(), sender, domain.MetricEBITDA).
					Return(nil)
			},
			expected: "You selected EBITDA ✅\n\n" +
				"Please provide date range (MM/YY to MM/YY)\n👉 Example: 01/25 to 03/25",
		},
		{
			name: "Opção de menu 4 - deve mapear para Inventory",
			text: "4",
			setup: func() {
				mockSelectionRepo.EXPECT().
					Set(gomock.Any(), sender, domain.MetricInventory).
					Return(nil)
			},
			expected: "You selected INVENTORY ✅\n\n" +
				"Please provide date range (MM/YY to MM/YY)\n👉 Example: 01/25 to 03/25",
		},
		{
			name: "Opção de menu com espaços ao redor - deve aceitar",
			text: "  2  ",
			setup: func() {
				mockSelectionRepo.EXPECT().
					Set(gomock.Any(), sender, domain.MetricRevenue).
					Return(nil)
			},
			expected: "You selected REVENUE ✅\n\n" +
				"Please provide date range (MM/YY to MM/YY)\n👉 Example: 01/25 to 03/25",
		},
		{
			name:     "Opção de menu fora do intervalo - deve cair na mensagem de boas-vindas",
			text:     "5",
			setup:    func() {},
			expected: WelcomeMessage,
		},
		{
			name:     "Texto livre - deve responder a mensagem de boas-vindas",
			text:     "hello",
			setup:    func() {},
			expected: WelcomeMessage,
		},
		{
			name:     "Mensagem vazia - deve responder a mensagem de boas-vindas",
			text:     "   ",
			setup:    func() {},
			expected: WelcomeMessage,
		},
		{
			name: "Falha ao carregar a seleção - deve responder a desculpa",
			text: "01/25 to 03/25",
			setup: func() {
				mockSelectionRepo.EXPECT().
					Get(gomock.Any(), sender).
					Return(nil, assert.AnError)
			},
			expected: ApologyMessage,
		},
		{
			name: "Falha ao gravar a seleção - deve responder a desculpa",
			text: "3",
			setup: func() {
				mockSelectionRepo.EXPECT().
					Set(gomock.Any(), sender, domain.MetricSales).
					Return(assert.AnError)
			},
			expected: ApologyMessage,
		},
		{
			name: "Falha na soma da métrica - deve responder a desculpa",
			text: "EBITDA 01/25 to 03/25",
			setup: func() {
				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricEBITDA, 100, from, to).
					Return(decimal.Zero, assert.AnError)
			},
			expected: ApologyMessage,
		},
		{
			name: "Falha em uma das somas do relatório completo - deve responder a desculpa",
			text: "01/25 to 03/25",
			setup: func() {
				mockSelectionRepo.EXPECT().
					Get(gomock.Any(), sender).
					Return(nil, nil)

				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), domain.MetricRevenue, 100, from, to).
					Return(decimal.Zero, assert.AnError)
				mockFinancialRepo.EXPECT().
					SumMetric(gomock.Any(), gomock.Any(), 100, from, to).
					Return(decimal.Zero, nil).
					AnyTimes()
			},
			expected: ApologyMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result := service.HandleMessage(context.Background(), sender, tt.text)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestService_HandleMessage_SelectionOverwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinancialRepo := mocks.NewMockFinancialRepository(ctrl)
	mockSelectionRepo := mocks.NewMockUserSelectionRepository(ctrl)

	service := &Service{
		cfg:           &config.Config{Analytics: config.Analytics{CompanyID: 100}},
		financialRepo: mockFinancialRepo,
		selectionRepo: mockSelectionRepo,
	}

	sender := "919876543210"
	ctx := context.Background()

	// Cada nova escolha sobrescreve a anterior: última escrita vence.
	gomock.InOrder(
		mockSelectionRepo.EXPECT().Set(ctx, sender, domain.MetricEBITDA).Return(nil),
		mockSelectionRepo.EXPECT().Set(ctx, sender, domain.MetricInventory).Return(nil),
	)

	service.HandleMessage(ctx, sender, "1")
	service.HandleMessage(ctx, sender, "4")

	// A consulta seguinte usa só a última seleção gravada.
	selected := domain.MetricInventory
	mockSelectionRepo.EXPECT().Get(ctx, sender).Return(&selected, nil)
	mockFinancialRepo.EXPECT().
		SumMetric(gomock.Any(), domain.MetricInventory, 100,
			time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)).
		Return(decimal.NewFromInt(320), nil)

	result := service.HandleMessage(ctx, sender, "02/25 to 02/25")
	assert.Equal(t, "📊 INVENTORY Report (02/2025 → 02/2025): ₹320", result)
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name     string
		args     [4]string
		expected domain.MonthRange
	}{
		{
			name: "Intervalo de três meses",
			args: [4]string{"01", "25", "03", "25"},
			expected: domain.MonthRange{
				From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Fevereiro - último dia correto",
			args: [4]string{"02", "25", "02", "25"},
			expected: domain.MonthRange{
				From: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Fevereiro bissexto",
			args: [4]string{"02", "24", "02", "24"},
			expected: domain.MonthRange{
				From: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Dezembro - virada de ano do mês final",
			args: [4]string{"11", "25", "12", "25"},
			expected: domain.MonthRange{
				From: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Intervalo invertido - mantido como veio, a soma resolve em vazio",
			args: [4]string{"03", "25", "01", "25"},
			expected: domain.MonthRange{
				From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := monthRange(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			assert.Equal(t, tt.expected, result)
		})
	}
}

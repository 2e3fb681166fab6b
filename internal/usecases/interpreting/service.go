package interpreting

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository"
	"github.com/vfg2006/analytics-bot-api/internal/config"
	"github.com/vfg2006/analytics-bot-api/internal/domain"
	"github.com/vfg2006/analytics-bot-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Respostas fixas do bot. São contrato com o usuário final: o texto do
// menu e dos exemplos é o que o usuário aprende a digitar.
const (
	WelcomeMessage = "Welcome to Business Analytics 📊\n\nChoose an option:\n" +
		"1️⃣ EBITDA\n2️⃣ Revenue\n3️⃣ Sales\n4️⃣ Inventory\n\n" +
		"Or try query directly:\n👉 EBITDA 01/25 to 03/25\n👉 01/25 to 03/25"

	ApologyMessage = "⚠️ Sorry, I couldn't process your query."

	selectionReplyFormat = "You selected %s ✅\n\n" +
		"Please provide date range (MM/YY to MM/YY)\n👉 Example: 01/25 to 03/25"
)

// Padrões de classificação. O padrão com métrica é testado antes do
// padrão de intervalo puro: a ordem é o desempate, primeiro match vence.
var (
	metricRangePattern = regexp.MustCompile(`(?i)(EBITDA|SALES|REVENUE|COGS|INVENTORY)\s+(\d{2})/(\d{2})\s+to\s+(\d{2})/(\d{2})`)
	rangePattern       = regexp.MustCompile(`(\d{2})/(\d{2})\s+to\s+(\d{2})/(\d{2})`)
)

// Linhas do relatório completo, na ordem fixa de exibição. Inventory é
// uma contagem de estoque, não um valor monetário, e sai sem o símbolo
// de moeda.
var reportLines = []struct {
	metric domain.Metric
	label  string
	rupee  bool
}{
	{domain.MetricEBITDA, "EBITDA", true},
	{domain.MetricRevenue, "Revenue", true},
	{domain.MetricSales, "Sales", true},
	{domain.MetricInventory, "Inventory", false},
}

type Service struct {
	cfg           *config.Config
	financialRepo repository.FinancialRepository
	selectionRepo repository.UserSelectionRepository
}

func NewService(
	cfg *config.Config,
	financialRepo repository.FinancialRepository,
	selectionRepo repository.UserSelectionRepository,
) Interpreter {
	return &Service{
		cfg:           cfg,
		financialRepo: financialRepo,
		selectionRepo: selectionRepo,
	}
}

// HandleMessage classifica o texto recebido e monta a resposta.
// Precedência: métrica+intervalo, intervalo puro, opção de menu,
// mensagem de boas-vindas. Qualquer falha de consulta vira a resposta
// de desculpas; o transporte sempre tem o que enviar de volta.
func (s *Service) HandleMessage(ctx context.Context, senderID string, text string) string {
	text = strings.TrimSpace(text)

	if m := metricRangePattern.FindStringSubmatch(text); m != nil {
		metric, err := domain.ParseMetric(m[1])
		if err != nil {
			logrus.WithError(err).Error("interpreting: metric out of pattern range")
			return ApologyMessage
		}

		return s.singleMetricReport(ctx, metric, monthRange(m[2], m[3], m[4], m[5]))
	}

	if m := rangePattern.FindStringSubmatch(text); m != nil {
		queryRange := monthRange(m[1], m[2], m[3], m[4])

		selected, err := s.selectionRepo.Get(ctx, senderID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"sender": senderID,
				"error":  err.Error(),
			}).Error("interpreting: failed to load user selection")
			return ApologyMessage
		}

		if selected != nil {
			return s.singleMetricReport(ctx, *selected, queryRange)
		}

		return s.fullReport(ctx, queryRange)
	}

	if metric, ok := domain.MetricFromMenuOption(text); ok {
		if err := s.selectionRepo.Set(ctx, senderID, metric); err != nil {
			logrus.WithFields(logrus.Fields{
				"sender": senderID,
				"metric": string(metric),
				"error":  err.Error(),
			}).Error("interpreting: failed to store user selection")
			return ApologyMessage
		}

		return fmt.Sprintf(selectionReplyFormat, metric.Label())
	}

	return WelcomeMessage
}

func (s *Service) singleMetricReport(ctx context.Context, metric domain.Metric, queryRange domain.MonthRange) string {
	total, err := s.financialRepo.SumMetric(ctx, metric, s.cfg.Analytics.CompanyID, queryRange.From, queryRange.To)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"metric": string(metric),
			"error":  err.Error(),
		}).Error("interpreting: failed to sum metric")
		return ApologyMessage
	}

	return fmt.Sprintf(
		"📊 %s Report (%s → %s): ₹%s",
		metric.Label(),
		queryRange.From.Format("01/2006"),
		queryRange.To.Format("01/2006"),
		utils.FormatAmount(total),
	)
}

// fullReport calcula as quatro métricas canônicas em paralelo. A ordem
// das linhas da resposta é fixa, independente da ordem de término.
func (s *Service) fullReport(ctx context.Context, queryRange domain.MonthRange) string {
	totals := make([]decimal.Decimal, len(reportLines))

	g, gctx := errgroup.WithContext(ctx)
	for i, line := range reportLines {
		i, line := i, line
		g.Go(func() error {
			total, err := s.financialRepo.SumMetric(gctx, line.metric, s.cfg.Analytics.CompanyID, queryRange.From, queryRange.To)
			if err != nil {
				return fmt.Errorf("soma de %s: %w", line.metric, err)
			}
			totals[i] = total
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("interpreting: failed to build full report")
		return ApologyMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Report (%s → %s)",
		queryRange.From.Format("01/2006"),
		queryRange.To.Format("01/2006"),
	)
	for i, line := range reportLines {
		b.WriteString("\n")
		b.WriteString(line.label)
		b.WriteString(": ")
		if line.rupee {
			b.WriteString("₹")
		}
		b.WriteString(utils.FormatAmount(totals[i]))
	}

	return b.String()
}

// monthRange deriva o intervalo de datas de uma consulta "MM/YY to MM/YY":
// dia 01 do mês inicial até o último dia do mês final. Os grupos vêm dos
// padrões acima, sempre dois dígitos.
func monthRange(fromMonth, fromYear, toMonth, toYear string) domain.MonthRange {
	fm, _ := strconv.Atoi(fromMonth)
	fy, _ := strconv.Atoi(fromYear)
	tm, _ := strconv.Atoi(toMonth)
	ty, _ := strconv.Atoi(toYear)

	return domain.MonthRange{
		From: utils.StartOfMonth(utils.ExpandShortYear(fy), time.Month(fm)),
		To:   utils.EndOfMonth(utils.ExpandShortYear(ty), time.Month(tm)),
	}
}

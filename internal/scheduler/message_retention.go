// Package scheduler contém os serviços de agendamento da aplicação.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository"
	"github.com/vfg2006/analytics-bot-api/internal/config"
)

type MessageRetentionConfig struct {
	CronSchedule string
	Days         int
	Enabled      bool
}

// MessageRetentionService remove periodicamente mensagens antigas do log
// de conversas, respeitando a janela de retenção configurada.
type MessageRetentionService struct {
	scheduler           *gocron.Scheduler
	messageRepo         repository.MessageRepository
	config              MessageRetentionConfig
	pruneRunning        bool
	pruneMutex          sync.Mutex
	lastPruneStartedAt  time.Time
	lastPruneFinishedAt time.Time
}

func NewMessageRetentionService(
	messageRepo repository.MessageRepository,
	cfg *config.Config,
) *MessageRetentionService {
	retentionConfig := MessageRetentionConfig{
		CronSchedule: cfg.MessageRetention.CronSchedule,
		Days:         cfg.MessageRetention.Days,
		Enabled:      cfg.MessageRetention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.Days,
	}).Info("Configuração de retenção do log de mensagens carregada")

	return &MessageRetentionService{
		scheduler:   scheduler,
		messageRepo: messageRepo,
		config:      retentionConfig,
	}
}

func (s *MessageRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção do log de mensagens desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção do log de mensagens")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.pruneMessages()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção do log de mensagens: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção do log de mensagens")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MessageRetentionService) pruneMessages() {
	s.pruneMutex.Lock()
	if s.pruneRunning {
		s.pruneMutex.Unlock()
		logrus.Info("Limpeza do log de mensagens já em andamento, ignorando execução")
		return
	}
	s.pruneRunning = true
	s.lastPruneStartedAt = time.Now()
	s.pruneMutex.Unlock()

	defer func() {
		s.pruneMutex.Lock()
		s.pruneRunning = false
		s.lastPruneFinishedAt = time.Now()
		s.pruneMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	removed, err := s.messageRepo.DeleteOlderThan(ctx, s.config.Days)
	if err != nil {
		logrus.WithError(err).Error("scheduler: failed to prune message log")
		return
	}

	logrus.WithFields(logrus.Fields{
		"removed":        removed,
		"retention_days": s.config.Days,
	}).Info("Limpeza do log de mensagens concluída")
}

// TriggerManualPrune dispara a limpeza fora do horário agendado.
func (s *MessageRetentionService) TriggerManualPrune() {
	s.pruneMutex.Lock()
	if s.pruneRunning {
		s.pruneMutex.Unlock()
		logrus.Info("Limpeza do log de mensagens já em andamento, ignorando solicitação manual")
		return
	}
	s.pruneMutex.Unlock()

	logrus.Info("Iniciando limpeza manual do log de mensagens")
	go s.pruneMessages()
}

func (s *MessageRetentionService) GetStatus() map[string]any {
	s.pruneMutex.Lock()
	defer s.pruneMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"retention_days":         s.config.Days,
		"prune_running":          s.pruneRunning,
		"last_prune_started_at":  s.lastPruneStartedAt,
		"last_prune_finished_at": s.lastPruneFinishedAt,
	}
}

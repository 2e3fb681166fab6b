package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestMessageRetentionService_pruneMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)

	service := &MessageRetentionService{
		messageRepo: mockMessageRepo,
		config: MessageRetentionConfig{
			CronSchedule: "0 3 * * *",
			Days:         90,
			Enabled:      true,
		},
	}

	t.Run("Deve remover mensagens além da janela de retenção", func(t *testing.T) {
		mockMessageRepo.EXPECT().
			DeleteOlderThan(gomock.Any(), 90).
			Return(int64(42), nil)

		service.pruneMessages()

		status := service.GetStatus()
		assert.False(t, status["prune_running"].(bool))
		assert.False(t, status["last_prune_finished_at"].(time.Time).IsZero())
	})

	t.Run("Falha no banco não deixa a limpeza marcada como em andamento", func(t *testing.T) {
		mockMessageRepo.EXPECT().
			DeleteOlderThan(gomock.Any(), 90).
			Return(int64(0), assert.AnError)

		service.pruneMessages()

		status := service.GetStatus()
		assert.False(t, status["prune_running"].(bool))
	})

	t.Run("Execução concorrente é ignorada", func(t *testing.T) {
		service.pruneMutex.Lock()
		service.pruneRunning = true
		service.pruneMutex.Unlock()

		// Nenhuma expectativa no mock: DeleteOlderThan não pode ser chamado.
		service.pruneMessages()

		service.pruneMutex.Lock()
		service.pruneRunning = false
		service.pruneMutex.Unlock()
	})
}

func TestMessageRetentionService_Start_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)

	service := &MessageRetentionService{
		messageRepo: mockMessageRepo,
		config: MessageRetentionConfig{
			CronSchedule: "0 3 * * *",
			Days:         90,
			Enabled:      false,
		},
	}

	// Desabilitado: nada é agendado e nada toca o repositório.
	err := service.Start(context.Background())
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.False(t, status["enabled"].(bool))
}

func TestMessageRetentionService_GetStatus(t *testing.T) {
	service := &MessageRetentionService{
		config: MessageRetentionConfig{
			CronSchedule: "0 3 * * *",
			Days:         30,
			Enabled:      true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 3 * * *", status["cron"])
	assert.Equal(t, 30, status["retention_days"])
	assert.Equal(t, false, status["prune_running"])
}

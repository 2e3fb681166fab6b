package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-bot-api/internal/scheduler"
	"github.com/vfg2006/analytics-bot-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMessages = "messages"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MessageRetentionService *scheduler.MessageRetentionService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMessages:
			if services.MessageRetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção de mensagens não disponível", nil)
				return
			}
			services.MessageRetentionService.TriggerManualPrune()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: messages", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"messages": services.MessageRetentionService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

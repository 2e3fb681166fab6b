package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vfg2006/analytics-bot-api/infrastructure/repository"
	"github.com/vfg2006/analytics-bot-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-bot-api/pkg/log"
)

const defaultMessageListLimit = 20

// ListMessages retorna as mensagens mais recentes do log de conversas,
// da mais nova para a mais antiga.
func ListMessages(messageRepo repository.MessageRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := defaultMessageListLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		messages, err := messageRepo.ListRecent(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("messages: failed to list message log")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar log de mensagens", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(messages); err != nil {
			logger.WithError(err).Error("messages: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

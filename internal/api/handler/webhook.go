package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	wadomain "github.com/vfg2006/analytics-bot-api/infrastructure/integrator/whatsapp/domain"
	"github.com/vfg2006/analytics-bot-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository"
	"github.com/vfg2006/analytics-bot-api/internal/config"
	"github.com/vfg2006/analytics-bot-api/internal/domain"
	"github.com/vfg2006/analytics-bot-api/internal/usecases/interpreting"
	"github.com/vfg2006/analytics-bot-api/pkg/log"
)

// VerifyWebhook responde ao handshake de verificação da Meta: devolve o
// hub.challenge quando o verify token confere, 403 caso contrário.
func VerifyWebhook(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode := r.URL.Query().Get("hub.mode")
		token := r.URL.Query().Get("hub.verify_token")
		challenge := r.URL.Query().Get("hub.challenge")

		if mode == "subscribe" && token != "" && token == cfg.WhatsApp.VerifyToken {
			log.ForContext(r.Context()).Info("webhook: verification handshake accepted")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(challenge))
			return
		}

		log.ForContext(r.Context()).WithField("mode", mode).Warn("webhook: verification handshake rejected")
		w.WriteHeader(http.StatusForbidden)
	})
}

// ReceiveWebhook é o endpoint de conversa: registra a mensagem recebida,
// aciona o interpretador e envia a resposta pelo canal de saída. Sempre
// responde 200 à plataforma: falhas internas são logadas, nunca
// devolvidas (a Meta reenvia eventos respondidos com erro).
func ReceiveWebhook(
	interpreter interpreting.Interpreter,
	messageRepo repository.MessageRepository,
	notifier whatsapp.Notifier,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var payload wadomain.WebhookPayload
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("webhook: failed to decode payload")
			w.WriteHeader(http.StatusOK)
			return
		}

		if payload.Object == "" {
			w.WriteHeader(http.StatusOK)
			return
		}

		msg, ok := payload.FirstMessage()
		if !ok {
			// Eventos sem mensagem (status de entrega etc.) são ignorados.
			w.WriteHeader(http.StatusOK)
			return
		}

		from := msg.From
		text := strings.TrimSpace(msg.Body())

		logger.WithFields(log.Fields{
			"from": from,
			"text": text,
		}).Info("webhook: incoming message")

		if err := messageRepo.Save(r.Context(), from, text, domain.MessageDirectionIn); err != nil {
			logger.WithError(err).Error("webhook: failed to log incoming message")
		}

		reply := interpreter.HandleMessage(r.Context(), from, text)

		if err := notifier.SendText(from, reply); err != nil {
			logger.WithFields(log.Fields{
				"from":  from,
				"error": err.Error(),
			}).Error("webhook: failed to send reply")
		}

		if err := messageRepo.Save(r.Context(), from, reply, domain.MessageDirectionOut); err != nil {
			logger.WithError(err).Error("webhook: failed to log outgoing message")
		}

		w.WriteHeader(http.StatusOK)
	})
}

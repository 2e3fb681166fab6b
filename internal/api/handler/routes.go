package handler

import (
	"net/http"

	"github.com/vfg2006/analytics-bot-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository"
	"github.com/vfg2006/analytics-bot-api/internal/api/handler/router"
	"github.com/vfg2006/analytics-bot-api/internal/config"
	"github.com/vfg2006/analytics-bot-api/internal/usecases/authenticating"
	"github.com/vfg2006/analytics-bot-api/internal/usecases/interpreting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Webhook são as rotas públicas consumidas pela plataforma de mensagens:
// o handshake de verificação e a entrega de eventos.
func Webhook(
	cfg *config.Config,
	interpreter interpreting.Interpreter,
	messageRepo repository.MessageRepository,
	notifier whatsapp.Notifier,
) []router.Route {
	return []router.Route{
		{
			Path:    "/webhook",
			Method:  http.MethodGet,
			Handler: VerifyWebhook(cfg),
		},
		{
			Path:    "/webhook",
			Method:  http.MethodPost,
			Handler: ReceiveWebhook(interpreter, messageRepo, notifier),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Messages(messageRepo repository.MessageRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/messages",
			Method:  http.MethodGet,
			Handler: ListMessages(messageRepo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

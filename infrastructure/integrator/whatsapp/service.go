package whatsapp

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-bot-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/vfg2006/analytics-bot-api/internal/config"
)

// Notifier é o canal de saída do bot: entrega um texto a um destinatário.
// Retentativas e autenticação são preocupações do cliente por trás dele.
type Notifier interface {
	SendText(to string, body string) error
}

type WhatsAppIntegrator struct {
	cfg    *config.Config
	Client whatsappclient.Client
}

func New(cfg *config.Config, client whatsappclient.Client) *WhatsAppIntegrator {
	return &WhatsAppIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *WhatsAppIntegrator) SendText(to string, body string) error {
	if err := s.Client.SendTextMessage(to, body); err != nil {
		logrus.WithFields(logrus.Fields{
			"to":    to,
			"error": err.Error(),
		}).Error("whatsapp: failed to send message")
		return err
	}

	logrus.WithField("to", to).Debug("whatsapp: message sent")
	return nil
}

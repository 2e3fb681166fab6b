package whatsappclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	wadomain "github.com/vfg2006/analytics-bot-api/infrastructure/integrator/whatsapp/domain"
	"github.com/vfg2006/analytics-bot-api/internal/config"
)

type Client interface {
	SendTextMessage(to string, body string) error
}

type WhatsAppClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &WhatsAppClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{},
	}
}

// SendTextMessage envia uma mensagem de texto para um número via Cloud API.
func (c *WhatsAppClient) SendTextMessage(to string, body string) error {
	url := fmt.Sprintf("%s/%s/messages", c.Cfg.WhatsApp.URL, c.Cfg.WhatsApp.PhoneNumberID)

	payload := wadomain.TextMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             wadomain.Text{Body: body},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Cfg.WhatsApp.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	if _, err := c.handleResponse(resp); err != nil {
		return err
	}

	return nil
}

// handleResponse lê o corpo da resposta e converte status de erro da
// Graph API em erro Go com o corpo retornado.
func (c *WhatsAppClient) handleResponse(resp *http.Response) ([]byte, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("whatsapp: erro na Graph API (status %d): %s", resp.StatusCode, data)
	}

	return data, nil
}

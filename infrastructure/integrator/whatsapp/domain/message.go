package domain

// Estruturas da Cloud API do WhatsApp (Graph API da Meta).

// TextMessageRequest é o corpo do envio de mensagem de texto.
type TextMessageRequest struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             Text   `json:"text"`
}

type Text struct {
	Body string `json:"body"`
}

// WebhookPayload é o evento de entrada entregue pelo webhook. A Meta
// envia lotes de entradas/mudanças; o bot consome a primeira mensagem.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Messages         []Message `json:"messages"`
}

type Message struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *MessageText `json:"text,omitempty"`
}

type MessageText struct {
	Body string `json:"body"`
}

// FirstMessage extrai a primeira mensagem do lote do webhook, se existir.
func (p *WebhookPayload) FirstMessage() (*Message, bool) {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return nil, false
	}

	messages := p.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return nil, false
	}

	return &messages[0], true
}

// Body retorna o texto da mensagem, ou vazio para mensagens não textuais.
func (m *Message) Body() string {
	if m.Text == nil {
		return ""
	}
	return m.Text.Body
}

package domain

import "time"

// Direções possíveis de uma mensagem no log de conversas.
const (
	MessageDirectionIn  = "in"
	MessageDirectionOut = "out"
)

// Message é uma entrada do log de conversas: toda mensagem recebida do
// webhook e toda resposta enviada são registradas aqui.
type Message struct {
	ID         int       `json:"id"`
	FromNumber string    `json:"from_number"`
	Text       string    `json:"message_text"`
	Direction  string    `json:"direction"`
	CreatedAt  time.Time `json:"created_at"`
}

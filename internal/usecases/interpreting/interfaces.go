package interpreting

import "context"

// Interpreter transforma o texto de uma mensagem recebida na resposta a
// ser enviada. É a fronteira de erro da conversa: sempre devolve uma
// resposta, nunca propaga falha ao transporte.
type Interpreter interface {
	HandleMessage(ctx context.Context, senderID string, text string) string
}

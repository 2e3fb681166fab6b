package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Operator é um usuário administrativo da API (consulta de logs e crons).
// Não confundir com os usuários finais do bot, identificados por telefone.
type Operator struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Claims struct {
	OperatorID    string
	OperatorName  string
	OperatorEmail string
	jwt.RegisteredClaims
}

package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para registros criados pela
// própria aplicação, como o operador administrativo inicial.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 6)
}

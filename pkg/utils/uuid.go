package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// idLength cabe no VARCHAR(32) das tabelas de métricas e relatórios
	idLength = 21
)

// GenerateID gera o identificador de métricas e relatórios persistidos
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const generationIDSize = 16

// GenerateID gera o identificador de uma geração de upload
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, generationIDSize)
}

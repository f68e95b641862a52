package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Base-36 alphabet, uppercase only.
const ValidationCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GenerateValidationCode returns an n character uppercase base-36 code.
func GenerateValidationCode(n int) (string, error) {
	code, err := gonanoid.Generate(ValidationCodeAlphabet, n)
	if err != nil {
		return "", err
	}
	return code, nil
}

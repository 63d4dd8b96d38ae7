package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken returns length chars of hex built from crypto/rand bytes.
func RandomToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b)[:length], nil
}

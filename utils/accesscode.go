package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// accessCodeSpan covers the 4-digit range 1000-9999 inclusive.
const (
	accessCodeMin  = 1000
	accessCodeSpan = 9000
)

// GenerateAccessCode returns a uniformly distributed 4-digit numeric code as a
// string. crypto/rand is used so codes are not guessable from prior orders.
func GenerateAccessCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(accessCodeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate access code: %w", err)
	}
	return fmt.Sprintf("%d", accessCodeMin+n.Int64()), nil
}

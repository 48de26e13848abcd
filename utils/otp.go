package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// GenerateNumericOTP returns a cryptographically random code of length digits.
// Leading zeros are kept.
func GenerateNumericOTP(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid OTP length %d", length)
	}
	var sb strings.Builder
	sb.Grow(length)
	ten := big.NewInt(10)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

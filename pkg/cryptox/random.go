package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// RandomString returns size random bytes encoded as base64url without
// padding.
func RandomString(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustRandomString is like RandomString but panics on error.
func MustRandomString(size int) string {
	s, err := RandomString(size)
	if err != nil {
		panic(err)
	}
	return s
}

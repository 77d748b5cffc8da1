package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 200_000
	saltBytes        = 16
	keyBytes         = 32
)

// HashPassword derives a PBKDF2-HMAC-SHA256 digest with a fresh random
// salt and returns it as "salt$digest" (both hex).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	dk := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyBytes, sha256.New)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(dk), nil
}

// CheckPasswordHash recomputes the digest with the stored salt and
// compares in constant time.
func CheckPasswordHash(password, stored string) bool {
	parts := strings.SplitN(stored, "$", 2)
	if len(parts) != 2 {
		return false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyBytes, sha256.New)
	return hmac.Equal(got, want)
}

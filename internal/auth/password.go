package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const saltBytes = 16

// GenerateSalt returns 16 cryptographically random bytes as lowercase hex.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives the stored digest: lowercase hex of
// SHA-256(salt ‖ password). The salt is prepended as its hex string, which
// keeps digests interchangeable with the previous service.
func HashPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest with the stored salt and compares in
// constant time.
func VerifyPassword(salt, storedDigest, password string) bool {
	computed := HashPassword(salt, password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}

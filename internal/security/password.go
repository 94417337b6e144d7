package security

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Digest parameters are fixed by the existing admins table: every stored
// digest was produced with these values, so they are not configurable.
const (
	saltBytes  = 16
	iterations = 10000
	keyBytes   = 64
)

// GenerateSalt returns a fresh random salt as a 32-character hex string.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives the stored digest for a password and salt.
// Deterministic: the same inputs always yield the same hex digest.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword reports whether password matches the stored digest.
func VerifyPassword(password, digest, salt string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

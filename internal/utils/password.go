package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	PasswordAlgorithm  = "pbkdf2_sha256"
	passwordIterations = 210000
	passwordKeyLength  = 32
	passwordSaltBytes  = 16
)

// derivePassword runs PBKDF2-SHA256 over the password. The salt is used in its
// hex-encoded form, exactly as it appears in the stored record.
func derivePassword(password, saltHex string) string {
	key := pbkdf2.Key([]byte(password), []byte(saltHex), passwordIterations, passwordKeyLength, sha256.New)
	return hex.EncodeToString(key)
}

// MakePasswordHash returns an encoded record of the form
// "pbkdf2_sha256$<saltHex>$<derivedHex>" using a fresh random salt.
func MakePasswordHash(password string) (string, error) {
	salt := make([]byte, passwordSaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	return strings.Join([]string{PasswordAlgorithm, saltHex, derivePassword(password, saltHex)}, "$"), nil
}

// VerifyPassword reports whether password matches the encoded record.
// Malformed records never match.
func VerifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return false
	}
	derived := derivePassword(password, parts[1])
	return subtle.ConstantTimeCompare([]byte(parts[2]), []byte(derived)) == 1
}

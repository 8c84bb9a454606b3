// Package auth implements password hashing and the session lifecycle for the
// admin panel.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. N is the CPU/memory cost; the derived key and the stored
// salt are both hex-encoded into a single "key.salt" string.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

const hashSeparator = "."

// HashPassword derives a scrypt key from the plaintext under a fresh random
// salt. Two calls with the same plaintext return different strings.
func HashPassword(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("auth: generating salt: %w", err)
	}

	key, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("auth: deriving key: %w", err)
	}

	return hex.EncodeToString(key) + hashSeparator + hex.EncodeToString(salt), nil
}

// VerifyPassword re-derives the key from the plaintext and the stored salt and
// compares in constant time. A malformed stored hash returns an error rather
// than false, so callers can distinguish corrupt records from bad passwords.
func VerifyPassword(plain, stored string) (bool, error) {
	keyHex, saltHex, found := strings.Cut(stored, hashSeparator)
	if !found {
		return false, fmt.Errorf("auth: stored hash is malformed")
	}

	storedKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("auth: decoding stored key: %w", err)
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("auth: decoding stored salt: %w", err)
	}

	derived, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, fmt.Errorf("auth: deriving key: %w", err)
	}

	return subtle.ConstantTimeCompare(storedKey, derived) == 1, nil
}

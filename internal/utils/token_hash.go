package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken generates a SHA-256 hash of a raw one-time token. The ledger
// persists only this hash; lookups re-hash the presented raw value.
func HashToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

// CompareTokenHash compares a raw token with its stored SHA-256 hash.
func CompareTokenHash(rawToken string, storedHash string) bool {
	return HashToken(rawToken) == storedHash
}

package utils

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashPassword digests a plaintext password: SHA-256 then base64. The scheme
// is deliberately unsalted and single-round to stay compatible with hashes
// already in the user store; see the auth service notes.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// CheckPasswordHash compares a plaintext password with a stored digest.
func CheckPasswordHash(password, hash string) bool {
	return HashPassword(password) == hash
}

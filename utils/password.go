package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the unsalted SHA-256 hex digest of the password.
// This matches the hashes already in the users table; changing the scheme
// would lock the author out of an existing database.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compares a stored digest with the digest of a candidate
// password in constant time.
func CheckPassword(hash, password string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(candidate)) == 1
}

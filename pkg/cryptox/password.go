package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the raw password.
//
// The digest is deliberately deterministic and unsalted: stored credentials
// were created this way and login matches on exact digest equality, so any
// change here invalidates every existing account. All hashing goes through
// this one function; a salted scheme (argon2, bcrypt) can replace it together
// with a stored-hash migration without touching calling code.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

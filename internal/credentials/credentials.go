// Package credentials normalizes and hashes admin login secrets.
//
// The digest format (sha256, lowercase hex) is a compatibility contract:
// exported employee records carry the digest, and re-imports must recognize
// it instead of hashing it a second time.
package credentials

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the lowercase hex sha256 digest of secret.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// LooksHashed reports whether v is already in canonical digest form:
// exactly 64 hexadecimal characters.
func LooksHashed(v string) bool {
	if len(v) != 64 {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Normalize maps a supplied secret to the stored digest form: already-hashed
// values are case-normalized and kept as-is, anything else is hashed.
func Normalize(secret string) string {
	if LooksHashed(secret) {
		return strings.ToLower(secret)
	}
	return Hash(secret)
}

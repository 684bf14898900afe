package utils

import (
	"crypto/sha256" // SHA‑256 hashing for password digests
	"encoding/hex"  // hex encoding of the digest bytes
)

// HashPassword returns the SHA‑256 hex digest of a plaintext password.  The
// digest is deterministic: the same input always produces the same output, so
// a login attempt is verified by hashing the attempt and comparing the result
// against the stored digest with plain string equality.
//
// NOTE: there is no per-user salt, so two accounts with the same password
// share a digest.  This mirrors how existing records were stored; switching to
// a salted, slow hash (e.g. bcrypt) would invalidate every stored credential
// and must be done as a migration, not a drop-in change.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether a plaintext attempt matches a stored digest.
func VerifyPassword(storedDigest, plain string) bool {
	return HashPassword(plain) == storedDigest
}

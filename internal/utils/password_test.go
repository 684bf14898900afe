package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordDeterministic(t *testing.T) {
	first := HashPassword("s3cret-Passw0rd")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, HashPassword("s3cret-Passw0rd"))
	}
}

func TestHashPasswordKnownVector(t *testing.T) {
	// SHA-256("password"), lower-case hex.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))
}

func TestHashPasswordNoSalt(t *testing.T) {
	// Two accounts with the same password share a digest.  This is the
	// documented (and risky) storage contract, not an accident.
	assert.Equal(t, HashPassword("same"), HashPassword("same"))
	assert.NotEqual(t, HashPassword("same"), HashPassword("Same"))
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("correct horse")
	assert.True(t, VerifyPassword(digest, "correct horse"))
	assert.False(t, VerifyPassword(digest, "wrong horse"))
	assert.False(t, VerifyPassword(digest, ""))
}

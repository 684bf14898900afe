package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-key"

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 42, "Admin", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	claims, err := ParseAccessToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "Admin", claims.Role)

	uid, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), uid)
}

func TestAccessTokenExpiry(t *testing.T) {
	// A 60 minute token is comfortably valid right after issuance.
	tok, err := NewAccessToken(testSecret, 7, "Customer", 60)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), tok.Exp, 5*time.Second)

	_, err = ParseAccessToken(testSecret, tok.Token)
	assert.NoError(t, err)

	// A token whose expiration already passed fails with exactly ErrTokenExpired.
	expired, err := NewAccessToken(testSecret, 7, "Customer", -1)
	require.NoError(t, err)
	_, err = ParseAccessToken(testSecret, expired.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessTokenWrongKey(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 1, "Admin", 60)
	require.NoError(t, err)

	_, err = ParseAccessToken("a-different-key", tok.Token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestAccessTokenTamperedSignature(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 1, "Admin", 60)
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	raw := []byte(tok.Token)
	last := raw[len(raw)-1]
	if last == 'A' {
		raw[len(raw)-1] = 'B'
	} else {
		raw[len(raw)-1] = 'A'
	}

	_, err = ParseAccessToken(testSecret, string(raw))
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestAccessTokenMalformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := ParseAccessToken(testSecret, raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", raw)
	}
}

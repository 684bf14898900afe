package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"  // sentinel error definitions and errors.Is
	"strconv" // integer-to-string conversion for the subject claim
	"time"    // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Sentinel validation failures.  The three cases are deliberately distinct so
// callers can log or test them separately, but the HTTP layer collapses all of
// them into a single generic 401 so clients cannot probe which check failed.
var (
	// ErrTokenMalformed is returned when the token cannot be decoded at all.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenSignature is returned when the token decodes but its HMAC
	// signature does not verify against the signing key.
	ErrTokenSignature = errors.New("token signature invalid")
	// ErrTokenExpired is returned when the token is well formed and correctly
	// signed but its expiration timestamp has passed.
	ErrTokenExpired = errors.New("token expired")
)

// AccessClaims is the verified payload of a session token.  Subject carries
// the user ID as a string-encoded integer and Role carries the single role
// name embedded at login time.  Tokens are self-contained: once issued, the
// role claim is trusted for the token's whole lifetime and is not re-checked
// against the database on each request, so a revoked role stays effective
// until the token expires.
type AccessClaims struct {
	Role string `json:"role"` // role name granted at issuance (e.g. "Admin")
	jwt.RegisteredClaims
}

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT string and Exp the UTC
// expiration time.  Access tokens are presented in the Authorization header
// when calling protected endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the user's role name, and a TTL in minutes.
// The subject claim is the decimal string form of the user ID.  No issuer or
// audience claims are set; validity rests entirely on the signature and the
// expiration timestamp.
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies a raw bearer token against the signing secret and
// returns its claims.  Only HS256 is accepted; tokens signed with any other
// algorithm fail signature verification.  Issuer and audience are not
// validated.  Failures map onto the sentinel errors above.
func ParseAccessToken(secret, raw string) (*AccessClaims, error) {
	tok, err := jwt.ParseWithClaims(raw, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	claims, ok := tok.Claims.(*AccessClaims)
	if !ok || !tok.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// UserID decodes the subject claim back into a numeric user ID.
func (c *AccessClaims) UserID() (uint64, error) {
	return strconv.ParseUint(c.Subject, 10, 64)
}

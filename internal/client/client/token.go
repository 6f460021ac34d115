package client

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims is the subset of the provider's access-token claims the client
// reads. Signature verification is the provider's job; the client only needs
// expiry and identity, so tokens are parsed unverified.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func parseAccessClaims(token string) (*accessClaims, bool) {
	claims := &accessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// sessionExpiry prefers the token's exp claim and falls back to the
// expires_at / expires_in fields of the token response.
func sessionExpiry(token string, expiresAt, expiresIn int64, now time.Time) time.Time {
	if c, ok := parseAccessClaims(token); ok && c.ExpiresAt != nil {
		return c.ExpiresAt.Time
	}
	if expiresAt > 0 {
		return time.Unix(expiresAt, 0)
	}
	if expiresIn > 0 {
		return now.Add(time.Duration(expiresIn) * time.Second)
	}
	return time.Time{}
}

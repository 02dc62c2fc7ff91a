package credentials

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of JWT claims the client cares about for display
// purposes (the settings screen shows who the token belongs to and when it
// expires). The token is never validated locally: the backend is the only
// authority on whether it is still good.
type Claims struct {
	Subject   string
	ExpiresAt *time.Time
	IssuedAt  *time.Time
}

// TokenClaims decodes token without verifying its signature and returns the
// registered claims. Returns an error if the string is not a structurally
// valid JWT.
func TokenClaims(token string) (Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}

	var out Claims
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		out.ExpiresAt = &t
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		t := iat.Time
		out.IssuedAt = &t
	}

	return out, nil
}

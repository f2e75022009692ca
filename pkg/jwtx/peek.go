// Package jwtx inspects bearer tokens on the client side. The backend signs
// and verifies tokens; this package only reads claims without verification so
// the console can avoid presenting a token it already knows is expired.
// Nothing here is a security check.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed reports a token that does not parse as a JWT at all.
	ErrMalformed = errors.New("jwtx: malformed token")

	// ErrNoExpiry reports a token without an exp claim.
	ErrNoExpiry = errors.New("jwtx: token has no expiry claim")
)

// PeekExpiry extracts the exp claim from a JWT without verifying its
// signature.
func PeekExpiry(token string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, ErrMalformed
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// Expired reports whether the token carries an exp claim in the past.
// Opaque (non-JWT) tokens and tokens without exp are treated as not expired;
// the backend remains the authority and will reject them with a 401 if stale.
func Expired(token string, now time.Time) bool {
	exp, err := PeekExpiry(token)
	if err != nil {
		return false
	}
	return exp.Before(now)
}

// PeekSubject extracts the sub claim without verification. Returns an empty
// string for opaque tokens or tokens without a subject.
func PeekSubject(token string) string {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

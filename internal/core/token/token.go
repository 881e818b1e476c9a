// Package token decodes and issues the bearer tokens the console uses for
// session decisions. Decoding deliberately skips signature verification:
// the backend re-validates every token it receives, and the claims are only
// used client-side for routing and display. Nothing here ever grants
// backend privileges.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/movaro/console/internal/core/domain"
)

// Claims is the identity triple embedded in a bearer token.
type Claims struct {
	SubjectID string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the claims are expired at the given instant.
// A token expiring exactly at the instant counts as expired.
func (c Claims) Expired(at time.Time) bool {
	return !c.ExpiresAt.After(at)
}

// Decode extracts the claims triple from a bearer token without verifying
// its signature. Any structural problem, a missing subject or expiry, or an
// unknown role yields domain.ErrTokenMalformed; callers must treat that as
// "session is unauthenticated", never as a fatal error.
func Decode(raw string) (Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, mapClaims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", domain.ErrTokenMalformed, err)
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", domain.ErrTokenMalformed)
	}

	role, _ := mapClaims["role"].(string)
	if !domain.ValidRole(role) {
		return Claims{}, fmt.Errorf("%w: unknown role %q", domain.ErrTokenMalformed, role)
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, fmt.Errorf("%w: missing expiry", domain.ErrTokenMalformed)
	}

	return Claims{
		SubjectID: sub,
		Role:      role,
		ExpiresAt: exp.Time.UTC(),
	}, nil
}

// Issuer signs bearer tokens. Used by the development stub API and by test
// fixtures; the production backend has its own signer.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue signs an HS256 token carrying the claims triple.
func (i *Issuer) Issue(c Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  c.SubjectID,
		"role": c.Role,
		"exp":  c.ExpiresAt.Unix(),
	})
	return t.SignedString(i.secret)
}

package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/movaro/console/internal/core/domain"
)

func TestDecode_RoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret")
	want := Claims{
		SubjectID: "u1",
		Role:      domain.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second).UTC(),
	}

	raw, err := issuer.Issue(want)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestDecode_Garbage(t *testing.T) {
	inputs := []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c",
		"Bearer abc",
		"eyJhbGciOiJIUzI1NiJ9.%%%.sig",
	}
	for _, raw := range inputs {
		if _, err := Decode(raw); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Errorf("Decode(%q): got %v, want ErrTokenMalformed", raw, err)
		}
	}
}

func TestDecode_MissingOrBadClaims(t *testing.T) {
	sign := func(claims jwt.MapClaims) string {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return raw
	}

	exp := time.Now().Add(time.Hour).Unix()
	cases := map[string]jwt.MapClaims{
		"no subject":    {"role": domain.RoleUser, "exp": exp},
		"empty subject": {"sub": "", "role": domain.RoleUser, "exp": exp},
		"no role":       {"sub": "u1", "exp": exp},
		"unknown role":  {"sub": "u1", "role": "superuser", "exp": exp},
		"no expiry":     {"sub": "u1", "role": domain.RoleUser},
		"string expiry": {"sub": "u1", "role": domain.RoleUser, "exp": "soon"},
	}
	for name, claims := range cases {
		if _, err := Decode(sign(claims)); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Errorf("%s: got %v, want ErrTokenMalformed", name, err)
		}
	}
}

func TestDecode_ExpiredTokenStillDecodes(t *testing.T) {
	// Expiry enforcement belongs to the session manager; the decoder only
	// extracts claims.
	issuer := NewIssuer("s")
	raw, err := issuer.Issue(Claims{
		SubjectID: "u1",
		Role:      domain.RoleUser,
		ExpiresAt: time.Now().Add(-10 * time.Second),
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !claims.Expired(time.Now()) {
		t.Fatalf("expected claims to be expired")
	}
}

func TestDecode_IgnoresSignature(t *testing.T) {
	// The console never holds the backend secret, so decoding works on any
	// signing key.
	raw, err := NewIssuer("unknown-backend-secret").Issue(Claims{
		SubjectID: "u2",
		Role:      domain.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := Decode(raw); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

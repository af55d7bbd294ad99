package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func testToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("segredo"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	s := testToken(t, jwt.MapClaims{"sub": "paula@exemplo.com", "exp": exp.Unix()})

	got, err := TokenExpiry(s)
	if err != nil {
		t.Fatalf("TokenExpiry: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("exp = %v, want %v", got, exp)
	}
}

func TestTokenExpiryMissingClaim(t *testing.T) {
	s := testToken(t, jwt.MapClaims{"sub": "paula@exemplo.com"})
	if _, err := TokenExpiry(s); err == nil {
		t.Fatal("a token without exp must error")
	}
}

func TestTokenExpiryGarbage(t *testing.T) {
	if _, err := TokenExpiry("nao-e-jwt"); err == nil {
		t.Fatal("garbage must error")
	}
}

func TestTokenSubject(t *testing.T) {
	s := testToken(t, jwt.MapClaims{"sub": "paula@exemplo.com", "exp": time.Now().Add(time.Hour).Unix()})
	got, err := TokenSubject(s)
	if err != nil {
		t.Fatalf("TokenSubject: %v", err)
	}
	if got != "paula@exemplo.com" {
		t.Fatalf("sub = %q", got)
	}
}

// Package authtest mints session tokens for tests.
package authtest

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/session-toolbar/internal/auth"
)

const secret = "authtest-secret"

// Token returns a signed compact token carrying the given identity claims.
func Token(t testing.TB, username string, isPlatformAdmin bool) string {
	t.Helper()
	now := time.Now()
	return Sign(t, &auth.Claims{
		Username:        username,
		IsPlatformAdmin: isPlatformAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
}

// Sign signs arbitrary claims with a fixed HS256 key.
func Sign(t testing.TB, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestRefreshTokenHashRoundTrip(t *testing.T) {
	// JWTs run well past bcrypt's 72-byte input limit; the digest step must
	// keep hashing and comparison working anyway.
	token := strings.Repeat("eyJhbGciOiJIUzI1NiJ9.", 10)

	hash, err := hashRefreshToken(token)
	if err != nil {
		t.Fatalf("hashRefreshToken: %v", err)
	}

	if !compareRefreshToken(hash, token) {
		t.Error("stored hash must match the original token")
	}
	if compareRefreshToken(hash, token+"tampered") {
		t.Error("a different token must not match the stored hash")
	}
}

func TestSignTokenCarriesClaimsAndExpiry(t *testing.T) {
	const secret = "test-secret"
	base := jwt.MapClaims{"user_id": "42", "email": "admin@example.com", "role": "ADMIN"}

	signed, err := signToken(base, secret, time.Hour)
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token failed to parse: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["email"] != "admin@example.com" || claims["role"] != "ADMIN" {
		t.Errorf("claims not carried through: %+v", claims)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	if remaining := time.Until(time.Unix(int64(exp), 0)); remaining < 55*time.Minute || remaining > time.Hour {
		t.Errorf("unexpected expiry window: %v", remaining)
	}
}

func TestSignTokenRejectsWrongSecret(t *testing.T) {
	signed, err := signToken(jwt.MapClaims{"user_id": "42"}, "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil && parsed.Valid {
		t.Error("token signed with another secret must not validate")
	}
}

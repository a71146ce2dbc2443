package jwt

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, "access", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
}

func TestParseWrongType(t *testing.T) {
	token, _ := GenerateToken(secret, 1, "refresh", time.Hour)

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for mismatched token type")
	}
}

func TestParseExpired(t *testing.T) {
	token, _ := GenerateToken(secret, 1, "access", -time.Minute)

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, _ := GenerateToken(secret, 1, "access", time.Hour)

	if _, err := ParseToken([]byte("other"), "access", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

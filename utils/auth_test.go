package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func init() {
	SetJWTSecret("test-secret")
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if hash == "secret1" {
		t.Error("Hash should not equal the plaintext")
	}
	if !CheckPasswordHash("secret1", hash) {
		t.Error("Correct password should verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("Wrong password should not verify")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("abc123", "alice", "alice@x.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}
	if claims.UserID != "abc123" {
		t.Errorf("Expected user id abc123, got %s", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Expected username alice, got %s", claims.Username)
	}
	if claims.Email != "alice@x.com" {
		t.Errorf("Expected email alice@x.com, got %s", claims.Email)
	}

	until := time.Until(claims.ExpiresAt.Time)
	if until < 6*24*time.Hour || until > 8*24*time.Hour {
		t.Errorf("Expected roughly 7 days of validity, got %v", until)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWTToken("abc123", "alice", "alice@x.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseJWTToken(tampered); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for tampered token, got %v", err)
	}

	if _, err := ParseJWTToken("not-a-token"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := &Claims{
		UserID: "abc123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	if _, err := ParseJWTToken(signed); err != ErrTokenExpired {
		t.Errorf("Expected ErrTokenExpired, got %v", err)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	claims := &Claims{
		UserID: "abc123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	if _, err := ParseJWTToken(signed); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

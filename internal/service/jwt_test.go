package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT(777)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	userID, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if userID != 777 {
		t.Errorf("userID = %d, want 777", userID)
	}
}

func TestJWTRejectsTampered(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT(1)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := ParseJWT(""); err == nil {
		t.Error("empty token accepted")
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-a")
	token, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	InitJWT("secret-b")
	if _, err := ParseJWT(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	InitJWT("test-secret")

	claims := jwt.MapClaims{
		"user_id": int64(5),
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"nbf":     time.Now().Add(-2 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(token); err == nil {
		t.Error("expired token accepted")
	}
}

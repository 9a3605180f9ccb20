package auth

import (
	"errors"
	"testing"
	"time"
)

func TestMintVerifyRoundTrip(t *testing.T) {
	tk := NewTokens("secret", time.Hour)

	s, err := tk.Mint("user-1", "coach")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	claims, err := tk.Verify(s)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-1" || claims.Role != "coach" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	s, err := NewTokens("secret-a", time.Hour).Mint("user-1", "fan")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := NewTokens("secret-b", time.Hour).Verify(s); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	tk := NewTokens("secret", -time.Minute)
	s, err := tk.Mint("user-1", "fan")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := tk.Verify(s); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	if _, err := NewTokens("secret", time.Hour).Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

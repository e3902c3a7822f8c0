package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewTokenIssuerEmptySecret(t *testing.T) {
	if _, err := NewTokenIssuer(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestIssueAndVerify(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	token, err := issuer.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "alice@example.com")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	// Issue in the past, verify in the present.
	issuer.now = func() time.Time { return time.Now().Add(-TokenTTL - time.Hour) }
	token, err := issuer.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	issuer.now = time.Now
	if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyTokenValidWithinWindow(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	issued := time.Now()
	issuer.now = func() time.Time { return issued }
	token, err := issuer.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Six days later the token is still valid.
	issuer.now = func() time.Time { return issued.Add(6 * 24 * time.Hour) }
	if _, err := issuer.Verify(token); err != nil {
		t.Fatalf("expected token valid within window, got %v", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	token, err := issuer.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	if _, err := issuer.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuerA, _ := NewTokenIssuer("secret-a")
	issuerB, _ := NewTokenIssuer("secret-b")

	token, err := issuerA.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := issuerB.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	issuer, _ := NewTokenIssuer("test-secret")
	if _, err := issuer.Verify("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", 30*time.Minute)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := svc.Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := svc.Verify(token, now.Add(5*time.Minute))
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", 30*time.Minute)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := svc.Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token, now.Add(31*time.Minute)); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := NewTokenService("secret", time.Hour).Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewTokenService("other-secret", time.Hour).Verify(token, now); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Verify_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := svc.Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered, now); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()

	for _, token := range []string{"", "not-a-token", "a.b"} {
		if _, err := svc.Verify(token, now); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenService_Verify_MissingSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// Well-signed token with no sub claim.
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token, now); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_Verify_RejectsNonHS256(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// alg=none style tokens must never verify.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token, now); err == nil {
		t.Fatalf("expected verification failure for unsigned token")
	}
}

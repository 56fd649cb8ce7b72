package token

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	pair, err := Issue("user-1", "student", "a@campus.edu", "Ada", "campusbook", "secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := Parse(pair.AccessToken, "secret", "campusbook")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}
	if claims.Role != "student" {
		t.Fatalf("expected role student, got %q", claims.Role)
	}
}

func TestParse_RejectsWrongKey(t *testing.T) {
	pair, err := Issue("user-1", "student", "", "", "campusbook", "secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse(pair.AccessToken, "other-secret", "campusbook"); err == nil {
		t.Fatalf("expected error for wrong key")
	}
}

func TestParse_RejectsIssuerMismatch(t *testing.T) {
	pair, err := Issue("user-1", "student", "", "", "someone-else", "secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse(pair.AccessToken, "secret", "campusbook"); err == nil {
		t.Fatalf("expected error for issuer mismatch")
	}
}

func TestParse_RejectsExpired(t *testing.T) {
	pair, err := Issue("user-1", "student", "", "", "campusbook", "secret", -time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse(pair.AccessToken, "secret", "campusbook"); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

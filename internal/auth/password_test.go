package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword(hash, "hunter23") {
		t.Fatalf("expected mismatched password to fail")
	}
}

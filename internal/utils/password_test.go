package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("expected hash to differ from plaintext")
	}

	if err = ComparePassword(hash, "s3cret"); err != nil {
		t.Errorf("expected password to match, got %v", err)
	}
	if err = ComparePassword(hash, "other"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestHashPassword_LongPasswords(t *testing.T) {
	long := strings.Repeat("a", 80)

	hash, err := HashPassword(long, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error for an 80 byte password: %v", err)
	}
	if err = ComparePassword(hash, long); err != nil {
		t.Errorf("expected long password to match, got %v", err)
	}

	// differs only after byte 72, where plain bcrypt stops reading
	if err = ComparePassword(hash, strings.Repeat("a", 79)+"b"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("pw", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("plaintext-not-a-hash", "plaintext-not-a-hash")
	if err == nil || errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected a non-mismatch error for malformed hash, got %v", err)
	}
}

func TestCompareDummyPassword_AlwaysFails(t *testing.T) {
	if err := CompareDummyPassword("dummy"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

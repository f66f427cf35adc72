package authutil

import (
	"strings"
	"testing"
)

func TestValidatePassword_Valid(t *testing.T) {
	for _, pw := range []string{"secure123", "MyP@ssw0rd", "abcdef1"} {
		if err := ValidatePassword(pw); err != nil {
			t.Errorf("expected %q to be valid, got error: %v", pw, err)
		}
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	for _, pw := range []string{"", "a", "abcde"} {
		if err := ValidatePassword(pw); err != ErrPasswordTooShort {
			t.Errorf("expected ErrPasswordTooShort for %q, got %v", pw, err)
		}
	}
}

func TestValidatePassword_TooLong(t *testing.T) {
	if err := ValidatePassword(strings.Repeat("a", 129)); err != ErrPasswordTooLong {
		t.Errorf("expected ErrPasswordTooLong, got %v", err)
	}
	if err := ValidatePassword(strings.Repeat("a", 128)); err != nil {
		t.Errorf("expected password at max length to be valid, got %v", err)
	}
}

func TestValidatePassword_CommonCaseInsensitive(t *testing.T) {
	for _, pw := range []string{"password", "PASSWORD", "Qwerty", "ILoveYou"} {
		if err := ValidatePassword(pw); err != ErrPasswordCommon {
			t.Errorf("expected ErrPasswordCommon for %q, got %v", pw, err)
		}
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("SecurePassword123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "SecurePassword123" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword("SecurePassword123", hash) {
		t.Error("CheckPassword rejected the right password")
	}
	if CheckPassword("wrong", hash) {
		t.Error("CheckPassword accepted the wrong password")
	}
	if CheckPassword("anything", "") {
		t.Error("CheckPassword accepted an empty hash")
	}
}

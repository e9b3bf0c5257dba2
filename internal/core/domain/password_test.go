package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePassword_Accepted(t *testing.T) {
	for _, pw := range []string{"Abc12345", "Sup3rSecret", "xY9aaaaa"} {
		if err := ValidatePassword(pw); err != nil {
			t.Fatalf("expected %q to pass, got %v", pw, err)
		}
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	err := ValidatePassword("Abc1234")
	if err == nil {
		t.Fatalf("expected 7-char password to fail")
	}
	assertPolicyReason(t, err, "8 characters")
}

func TestValidatePassword_MissingUppercase(t *testing.T) {
	err := ValidatePassword("abcdefg1")
	if err == nil {
		t.Fatalf("expected password without uppercase to fail")
	}
	assertPolicyReason(t, err, "uppercase")
}

func TestValidatePassword_MissingLowercase(t *testing.T) {
	err := ValidatePassword("ABCDEFG1")
	if err == nil {
		t.Fatalf("expected password without lowercase to fail")
	}
	assertPolicyReason(t, err, "lowercase")
}

func TestValidatePassword_MissingDigit(t *testing.T) {
	err := ValidatePassword("Abcdefgh")
	if err == nil {
		t.Fatalf("expected password without digit to fail")
	}
	assertPolicyReason(t, err, "digit")
}

func TestValidatePassword_NoUpperNoDigit(t *testing.T) {
	if err := ValidatePassword("abcdefgh"); err == nil {
		t.Fatalf("expected all-lowercase password to fail")
	}
}

// assertPolicyReason checks the error is a PasswordPolicyError naming the
// failed rule.
func assertPolicyReason(t *testing.T, err error, want string) {
	t.Helper()
	var ppe *PasswordPolicyError
	if !errors.As(err, &ppe) {
		t.Fatalf("expected PasswordPolicyError, got %T", err)
	}
	if !strings.Contains(ppe.Reason, want) {
		t.Fatalf("expected reason naming %q, got %q", want, ppe.Reason)
	}
}

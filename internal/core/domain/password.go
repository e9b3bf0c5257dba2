package domain

import "unicode"

// PasswordPolicyError names the specific strength rule a candidate password
// failed, so signup errors tell the caller exactly what to fix.
type PasswordPolicyError struct {
	Reason string
}

func (e *PasswordPolicyError) Error() string {
	return e.Reason
}

// ValidatePassword enforces the signup password policy: at least 8
// characters with one uppercase letter, one lowercase letter, and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &PasswordPolicyError{Reason: "password must be at least 8 characters long"}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return &PasswordPolicyError{Reason: "password must contain at least one uppercase letter"}
	}
	if !hasLower {
		return &PasswordPolicyError{Reason: "password must contain at least one lowercase letter"}
	}
	if !hasDigit {
		return &PasswordPolicyError{Reason: "password must contain at least one digit"}
	}
	return nil
}

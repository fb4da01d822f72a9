package password

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// ErrWeakPassword wraps the first policy rule a password pair fails.
var ErrWeakPassword = errors.New("weak password")

const symbols = "~`! @#$%^&*()_-+={[}]|\\:;\"'<,>.?/"

const minLength = 10

func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(hash), nil
}

func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidatePair checks a password and its confirmation against the policy.
// Rules are checked in a fixed order and the first violation is reported.
func ValidatePair(password, confirmation string) error {
	if len(password) < minLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrWeakPassword, minLength)
	}
	if password != confirmation {
		return fmt.Errorf("%w: passwords don't match", ErrWeakPassword)
	}
	if !strings.ContainsAny(password, symbols) {
		return fmt.Errorf("%w: password must contain at least one symbol", ErrWeakPassword)
	}
	if !containsFunc(password, unicode.IsDigit) {
		return fmt.Errorf("%w: password must contain at least one digit", ErrWeakPassword)
	}
	if !containsFunc(password, unicode.IsLower) {
		return fmt.Errorf("%w: password must contain at least one lowercase letter", ErrWeakPassword)
	}
	if !containsFunc(password, unicode.IsUpper) {
		return fmt.Errorf("%w: password must contain at least one uppercase letter", ErrWeakPassword)
	}
	return nil
}

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}
	return false
}

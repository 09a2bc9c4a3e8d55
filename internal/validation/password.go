package validation

import (
	"errors"
	"strings"
)

// weakFragments are substrings that disqualify a password outright.
var weakFragments = []string{
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "dragon", "master", "sunshine",
}

// ValidatePassword enforces the account password policy: 12 characters
// minimum, 72 maximum (bcrypt truncates anything longer), and none of
// the usual weak fragments.
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return errors.New("password must be at least 12 characters")
	}
	if len(password) > 72 {
		return errors.New("password must not exceed 72 characters")
	}

	lower := strings.ToLower(password)
	for _, fragment := range weakFragments {
		if strings.Contains(lower, fragment) {
			return errors.New("password is too common, please choose a stronger one")
		}
	}

	return nil
}

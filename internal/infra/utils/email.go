package utils

import (
	"fmt"
	"regexp"
	"unicode"
)

// local@domain.tld: no whitespace, a single @, and a dot after the @.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail validates that the given email string is a valid email address
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	for _, r := range email {
		if r > unicode.MaxASCII {
			return fmt.Errorf("invalid email format '%s'", email)
		}
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format '%s'", email)
	}

	return nil
}

// IsValidEmail checks if the given email string is a valid email address
func IsValidEmail(email string) bool {
	return ValidateEmail(email) == nil
}

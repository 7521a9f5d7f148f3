package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - covers ISO3 and community codes
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// ValidateID validates that a place identifier is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"leetstats/internal/domain/model"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,15}$`)

// ValidateUsername rejects empty or malformed usernames before any network activity.
// A valid username is returned unchanged.
func ValidateUsername(username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", fmt.Errorf("%w: username can't be empty", model.ErrEmptyInput)
	}
	if !usernamePattern.MatchString(username) {
		return "", fmt.Errorf("%w: username must match %s", model.ErrInvalidFormat, usernamePattern)
	}
	return username, nil
}

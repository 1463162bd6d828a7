package usecase

import (
	"errors"
	"strings"
	"testing"

	"leetstats/internal/domain/model"
)

func TestValidateUsername_Empty(t *testing.T) {
	for _, input := range []string{"", " ", "\t", "  \n "} {
		_, err := ValidateUsername(input)
		if !errors.Is(err, model.ErrEmptyInput) {
			t.Errorf("ValidateUsername(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestValidateUsername_Valid(t *testing.T) {
	for _, input := range []string{"a", "alice", "Bob_99", "x-y-z", "___", "123456789012345"} {
		got, err := ValidateUsername(input)
		if err != nil {
			t.Errorf("ValidateUsername(%q) unexpected error %v", input, err)
			continue
		}
		if got != input {
			t.Errorf("ValidateUsername(%q) = %q, want input unchanged", input, got)
		}
	}
}

func TestValidateUsername_InvalidFormat(t *testing.T) {
	tests := []string{
		"1234567890123456",
		strings.Repeat("a", 40),
		"alice smith",
		" alice",
		"alice!",
		"émile",
		"a.b",
		"user@site",
	}
	for _, input := range tests {
		_, err := ValidateUsername(input)
		if !errors.Is(err, model.ErrInvalidFormat) {
			t.Errorf("ValidateUsername(%q) error = %v, want ErrInvalidFormat", input, err)
		}
	}
}

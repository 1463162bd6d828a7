package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput          = errors.New("empty input")
	ErrInvalidFormat       = errors.New("invalid format")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrAllSourcesExhausted = errors.New("all sources exhausted")
)

// AttemptFailure records why one source in the fallback chain did not produce stats.
type AttemptFailure struct {
	Source string
	Err    error
}

// ExhaustedError is returned when no source produced stats for Username.
type ExhaustedError struct {
	Username string
	Failures []AttemptFailure
}

func (e *ExhaustedError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Source, f.Err))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s for %q", ErrAllSourcesExhausted, e.Username)
	}
	return fmt.Sprintf("%s for %q (%s)", ErrAllSourcesExhausted, e.Username, strings.Join(parts, "; "))
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrAllSourcesExhausted
}

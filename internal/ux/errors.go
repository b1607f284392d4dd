package ux

import (
	"fmt"
	"strings"

	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\nSuggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError adds a suggestion to uncoded errors whose message points to
// a common cause. Coded errors already carry their own suggestions.
func EnhanceError(err error) error {
	if err == nil || errs.CodeOf(err) != "" {
		return err
	}

	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "permission denied"):
		return NewErrorWithSuggestion(err,
			"Check that the data directory is writable or pass --data-dir")
	case strings.Contains(errMsg, "database is locked"):
		return NewErrorWithSuggestion(err,
			"Another homewhisper process is using the sqlite store; close it and try again")
	case strings.Contains(errMsg, "no space left on device"):
		return NewErrorWithSuggestion(err,
			"Free some disk space or choose another --data-dir")
	case strings.Contains(errMsg, "unknown store backend"):
		return NewErrorWithSuggestion(err,
			"Use --store file, --store sqlite or --store memory")
	}
	return err
}

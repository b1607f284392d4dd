package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Store errors (STORE-001 to STORE-099)
	ErrCodeStoreOpen   ErrorCode = "STORE-001"
	ErrCodeStoreRead   ErrorCode = "STORE-002"
	ErrCodeStoreWrite  ErrorCode = "STORE-003"
	ErrCodeStoreDelete ErrorCode = "STORE-004"
	ErrCodeStoreLock   ErrorCode = "STORE-005"

	// Progress snapshot errors (PROGRESS-001 to PROGRESS-099)
	ErrCodeProgressMalformed ErrorCode = "PROGRESS-001"
	ErrCodeProgressEncode    ErrorCode = "PROGRESS-002"

	// Wizard navigation errors (WIZARD-001 to WIZARD-099)
	ErrCodeWizardNoCompleted   ErrorCode = "WIZARD-001"
	ErrCodeWizardInvalidTarget ErrorCode = "WIZARD-002"
	ErrCodeWizardIncomplete    ErrorCode = "WIZARD-003"

	// Interview errors (INTERVIEW-001 to INTERVIEW-099)
	ErrCodeInterviewSectionUnknown  ErrorCode = "INTERVIEW-001"
	ErrCodeInterviewQuestionUnknown ErrorCode = "INTERVIEW-002"
	ErrCodeInterviewAnswerKind      ErrorCode = "INTERVIEW-003"
	ErrCodeInterviewAnswerInvalid   ErrorCode = "INTERVIEW-004"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigRead  ErrorCode = "CONFIG-001"
	ErrCodeConfigParse ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeNotInteractive  ErrorCode = "IO-007"
)

// HomeError represents an enhanced error with code, suggestions, and documentation
type HomeError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *HomeError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *HomeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a HomeError carrying the same code.
// This lets callers compare against the package-level sentinels.
func (e *HomeError) Is(target error) bool {
	t, ok := target.(*HomeError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new HomeError
func New(code ErrorCode, message string) *HomeError {
	return &HomeError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new HomeError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *HomeError {
	return &HomeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *HomeError) WithSuggestion(suggestion string) *HomeError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *HomeError) WithSuggestions(suggestions ...string) *HomeError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *HomeError) WithDocs(url string) *HomeError {
	e.DocsURL = url
	return e
}

// CodeOf returns the code of the first HomeError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	for err != nil {
		if he, ok := err.(*HomeError); ok {
			return he.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// Common error constructors

// NewNoCompletedSectionsError is the benign notice shown when results are
// requested before any section was submitted.
func NewNoCompletedSectionsError() *HomeError {
	return New(ErrCodeWizardNoCompleted, "complete at least one section first").
		WithSuggestion("Pick a section from the menu and answer its questions")
}

// NewInvalidTargetError creates an invalid navigation target error
func NewInvalidTargetError(target string) *HomeError {
	return New(ErrCodeWizardInvalidTarget, fmt.Sprintf("cannot navigate to %q", target)).
		WithSuggestion("Run 'homewhisper sections' to see available sections")
}

// NewIncompleteAnswersError creates an error for a submission missing answers
func NewIncompleteAnswersError(section string, missing []string) *HomeError {
	return New(ErrCodeWizardIncomplete,
		fmt.Sprintf("section %s is missing answers for: %s", section, strings.Join(missing, ", "))).
		WithSuggestion("Answer every question before submitting the section")
}

// NewSectionUnknownError creates an unknown section error
func NewSectionUnknownError(section string) *HomeError {
	return New(ErrCodeInterviewSectionUnknown, fmt.Sprintf("unknown section: %s", section)).
		WithSuggestion("Run 'homewhisper sections' to see available sections").
		WithSuggestion("Use one of: basic-questions, demographics, construction, transportation, smart-home")
}

// NewQuestionUnknownError creates an unknown question error
func NewQuestionUnknownError(section, questionID string) *HomeError {
	return New(ErrCodeInterviewQuestionUnknown,
		fmt.Sprintf("section %s has no question %q", section, questionID))
}

// NewAnswerKindError creates an error for an answer of the wrong kind
func NewAnswerKindError(questionID, want, got string) *HomeError {
	return New(ErrCodeInterviewAnswerKind,
		fmt.Sprintf("question %s expects a %s answer, got %s", questionID, want, got))
}

// NewAnswerInvalidError creates an invalid answer error
func NewAnswerInvalidError(questionID string, expected string) *HomeError {
	return New(ErrCodeInterviewAnswerInvalid, fmt.Sprintf("invalid answer for: %s", questionID)).
		WithSuggestion(fmt.Sprintf("Expected: %s", expected))
}

// NewProgressMalformedError creates a malformed snapshot error
func NewProgressMalformedError(cause error) *HomeError {
	return Wrap(ErrCodeProgressMalformed, "stored progress snapshot is malformed", cause)
}

// NewStoreError wraps a storage backend failure
func NewStoreError(code ErrorCode, backend, key string, cause error) *HomeError {
	return Wrap(code, fmt.Sprintf("%s store failed for key %q", backend, key), cause).
		WithSuggestion("Check that the data directory is writable").
		WithSuggestion("Run 'homewhisper config view' to inspect the store settings")
}

// NewConfigParseError creates a config parse error
func NewConfigParseError(path string, cause error) *HomeError {
	return Wrap(ErrCodeConfigParse, fmt.Sprintf("failed to parse config file: %s", path), cause).
		WithSuggestion("Check the YAML syntax").
		WithSuggestion("Run 'homewhisper config init' to write a fresh default config")
}

// NewNotInteractiveError creates an error for TUI use without a terminal
func NewNotInteractiveError() *HomeError {
	return New(ErrCodeNotInteractive, "standard input is not a terminal").
		WithSuggestion("Use 'homewhisper start --plain' for line-based prompts")
}

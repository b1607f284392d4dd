package exitcode

import (
	"context"
	"errors"
	"os"
	"strings"

	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// StorageError indicates the progress store could not be opened or written
	StorageError = 3

	// ConfigError indicates an unreadable or invalid configuration
	ConfigError = 4

	// NotInteractive indicates the TUI was requested without a terminal
	NotInteractive = 5

	// Interrupted indicates the run was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode maps an error to an exit code. Coded errors are mapped
// by their category; cobra's own usage errors are recognized by message.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	if errors.Is(err, context.Canceled) {
		return Interrupted
	}

	code := string(errs.CodeOf(err))
	switch {
	case strings.HasPrefix(code, "STORE-"), code == string(errs.ErrCodeFileWriteFailed):
		return StorageError
	case strings.HasPrefix(code, "CONFIG-"):
		return ConfigError
	case code == string(errs.ErrCodeNotInteractive):
		return NotInteractive
	case strings.HasPrefix(code, "WIZARD-"), strings.HasPrefix(code, "INTERVIEW-"):
		return UsageError
	case code != "":
		return GeneralError
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "invalid flag") || strings.Contains(errMsg, "unknown command") ||
		strings.Contains(errMsg, "unknown flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "accepts ") {
		return UsageError
	}

	// Default to general error
	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags, arguments or navigation)"
	case StorageError:
		return "Storage error"
	case ConfigError:
		return "Configuration error"
	case NotInteractive:
		return "No interactive terminal"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}

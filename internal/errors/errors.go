package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Process exit codes signal the outcome of the run to the OS.
const (
	ExitSuccess       = 0   // Successful execution.
	ExitErrorGeneric  = 1   // Generic failure, including arithmetic errors.
	ExitErrorTimeout  = 2   // The evaluation timed out.
	ExitErrorMismatch = 3   // Backends disagreed on a result.
	ExitErrorConfig   = 4   // Invalid flags or configuration.
	ExitErrorCanceled = 130 // Canceled by the user (SIGINT).
)

// ConfigError represents a user configuration error, such as an invalid flag
// value. It indicates the application cannot proceed due to incorrect input.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvalError wraps an error raised while evaluating an expression, preserving
// the original cause for errors.Is / errors.As inspection.
type EvalError struct {
	Cause error
}

func (e EvalError) Error() string { return e.Cause.Error() }

// Unwrap returns the underlying cause.
func (e EvalError) Unwrap() error { return e.Cause }

// TimeoutError reports that an evaluation exceeded its time limit.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was abandoned.
	Limit time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports an input field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps err with a formatted context message using %w, or returns
// nil when err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError reports whether err is a context cancellation or deadline
// expiry.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies the escape codes used when rendering error messages.
// The CLI backs it with the active ui theme; tests use a no-op provider.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// NoColorProvider renders error messages without any styling.
type NoColorProvider struct{}

func (NoColorProvider) Red() string    { return "" }
func (NoColorProvider) Yellow() string { return "" }
func (NoColorProvider) Reset() string  { return "" }

// HandleEvaluationError prints a diagnostic for a failed evaluation and maps
// the error to a process exit code. A nil error returns ExitSuccess.
func HandleEvaluationError(err error, elapsed time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimeout after %s.%s\n", colors.Yellow(), elapsed.Round(time.Millisecond), colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled after %s.%s\n", colors.Yellow(), elapsed.Round(time.Millisecond), colors.Reset())
		return ExitErrorCanceled
	}

	var timeoutErr TimeoutError
	if errors.As(err, &timeoutErr) {
		fmt.Fprintf(out, "%s%v%s\n", colors.Yellow(), err, colors.Reset())
		return ExitErrorTimeout
	}

	var configErr ConfigError
	if errors.As(err, &configErr) {
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	}

	fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	return ExitErrorGeneric
}

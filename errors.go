package liftoff

import (
	"errors"
	"fmt"
)

// ConfigError indicates the App was configured or mutated illegally:
// a missing run hook, or an attempt to replace a hook after Boot.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func errAlreadyBooted(hook string) *ConfigError {
	return &ConfigError{Field: hook, Message: "cannot be changed after boot"}
}

// PhaseError wraps a failure raised inside a lifecycle phase, identifying
// which phase failed. It unwraps to the original hook error.
type PhaseError struct {
	Phase Phase
	Cause error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %s failed: %v", e.Phase, e.Cause)
}

// Unwrap returns the underlying hook error.
func (e *PhaseError) Unwrap() error {
	return e.Cause
}

// ExitError is a failure carrying an explicit process exit code. Hooks wrap
// their errors with WithExitCode to select the status the process should
// terminate with when exit-on-error is enabled.
type ExitError struct {
	Code  int
	Cause error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("exit %d: %v", e.Code, e.Cause)
	}
	return fmt.Sprintf("exit %d", e.Code)
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the carried process exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// WithExitCode wraps err so the error path terminates the process with the
// given code instead of the default 1.
func WithExitCode(err error, code int) error {
	return &ExitError{Code: code, Cause: err}
}

// codeFromError derives the process exit code for a failure: the innermost
// carried code if any error in the chain exposes ExitCode(), else 1.
func codeFromError(err error) int {
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return 1
}

package liftoff

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "with field",
			err:  &ConfigError{Field: "run", Message: "hook is required"},
			want: "config error in run: hook is required",
		},
		{
			name: "without field",
			err:  &ConfigError{Message: "already booted"},
			want: "config error: already booted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPhaseError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &PhaseError{Phase: PhaseRegister, Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("PhaseError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "register") {
		t.Errorf("Error() = %q, want the phase name included", err.Error())
	}
}

func TestExitError(t *testing.T) {
	cause := errors.New("db gone")
	err := WithExitCode(cause, 7)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("WithExitCode did not produce an *ExitError")
	}
	if exitErr.ExitCode() != 7 {
		t.Errorf("ExitCode() = %d, want 7", exitErr.ExitCode())
	}
	if !errors.Is(err, cause) {
		t.Error("ExitError does not unwrap to its cause")
	}
}

func TestExitError_WithoutCause(t *testing.T) {
	err := &ExitError{Code: 4}
	if got := err.Error(); got != "exit 4" {
		t.Errorf("Error() = %q, want %q", got, "exit 4")
	}
}

package liftoff

import (
	"fmt"
	"log/slog"
	"os"
)

// Option is a functional option for App construction.
type Option func(*App) error

// WithRegister sets the setup phase. It runs first; a failure here routes
// to the error hook and skips run and onComplete entirely.
func WithRegister(fn Hook) Option {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("register hook cannot be nil")
		}
		a.hooks.register = fn
		return nil
	}
}

// WithRun sets the main phase. Boot fails with a *ConfigError when run is
// neither configured here nor passed as the Boot argument.
func WithRun(fn Hook) Option {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("run hook cannot be nil")
		}
		a.hooks.run = fn
		a.runConfigured = true
		return nil
	}
}

// WithOnComplete sets the success phase, run after the main phase returns
// without error.
func WithOnComplete(fn Hook) Option {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("onComplete hook cannot be nil")
		}
		a.hooks.onComplete = fn
		return nil
	}
}

// WithOnError sets the failure reporter. The default reports through the
// App's logger.
func WithOnError(fn ErrorHook) Option {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("onError hook cannot be nil")
		}
		a.hooks.onError = fn
		a.errorConfigured = true
		return nil
	}
}

// WithOnFinally sets the finalizer that runs exactly once per boot,
// after either the success or the failure path.
func WithOnFinally(fn Hook) Option {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("onFinally hook cannot be nil")
		}
		a.hooks.onFinally = fn
		return nil
	}
}

// WithTeardown sets the cleanup phase that Exit runs once before the
// process terminates.
func WithTeardown(fn Hook) Option {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("teardown hook cannot be nil")
		}
		a.hooks.teardown = fn
		return nil
	}
}

// WithExitOnError controls whether a pipeline failure terminates the
// process (default true). With it disabled the failure is reported and the
// process is left running.
func WithExitOnError(v bool) Option {
	return func(a *App) error {
		a.exitOnError = v
		return nil
	}
}

// WithLogger sets a custom structured logger. If not set, logs go to
// slog.Default(). The default error hook reports through this logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		a.logger = logger
		if !a.errorConfigured {
			a.hooks.onError = defaultErrorHook(logger)
		}
		return nil
	}
}

// WithSignals replaces the set of OS signals mapped to Exit. The default is
// os.Interrupt and syscall.SIGTERM.
func WithSignals(sigs ...os.Signal) Option {
	return func(a *App) error {
		if len(sigs) == 0 {
			return fmt.Errorf("at least one signal is required")
		}
		a.signals = sigs
		return nil
	}
}

// WithoutSignals disables signal binding. Termination then only happens
// through an explicit Exit or the exit-on-error path.
func WithoutSignals() Option {
	return func(a *App) error {
		a.signals = nil
		return nil
	}
}

// WithExitFunc replaces the process terminator (default os.Exit). Intended
// for tests and for embedding the controller inside a larger process.
func WithExitFunc(fn func(code int)) Option {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("exit func cannot be nil")
		}
		a.exit = fn
		return nil
	}
}

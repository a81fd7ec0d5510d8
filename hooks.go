package liftoff

import (
	"context"
	"log/slog"
)

// Hook is a lifecycle phase function. Hooks run strictly sequentially; the
// executor waits for one hook's outcome before starting the next. A hook
// that needs to report a specific process exit code wraps its error with
// WithExitCode.
type Hook func(ctx context.Context) error

// ErrorHook receives the failure captured from register, run, or
// onComplete. It runs before onFinally and before any exit-on-error
// termination.
type ErrorHook func(ctx context.Context, err error)

// hookSet is the fully-resolved set of phase functions. Every field is
// non-nil after New except run, which must be supplied by WithRun or as the
// Boot argument.
type hookSet struct {
	register   Hook
	run        Hook
	onComplete Hook
	onError    ErrorHook
	onFinally  Hook
	teardown   Hook
}

func noopHook(ctx context.Context) error { return nil }

// defaultErrorHook reports failures through the given logger. Used whenever
// the caller has not supplied an error hook of their own.
func defaultErrorHook(logger *slog.Logger) ErrorHook {
	return func(ctx context.Context, err error) {
		logger.Error("lifecycle error", slog.Any("error", err))
	}
}

// defaultHookSet fills every optional phase with its default: no-ops
// everywhere, and an error hook that reports through the logger.
func defaultHookSet(logger *slog.Logger) hookSet {
	return hookSet{
		register:   noopHook,
		onComplete: noopHook,
		onFinally:  noopHook,
		teardown:   noopHook,
		onError:    defaultErrorHook(logger),
	}
}

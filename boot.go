package liftoff

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Boot starts the lifecycle pipeline: register, then run, then onComplete,
// with any failure routed to onError and onFinally always running once. A
// run hook configured on the App takes precedence over the argument; pass
// nil when WithRun was used.
//
// Boot returns immediately after starting the pipeline goroutine; only
// configuration problems (already booted, missing run hook) are reported
// synchronously. Completion is observed through the hooks themselves, the
// event stream, or BootWait.
//
// On success the process is left running until something calls Exit; there
// is no implicit exit after the success path.
func (a *App) Boot(ctx context.Context, run Hook) error {
	a.mu.Lock()
	if a.booted {
		a.mu.Unlock()
		return &ConfigError{Message: "already booted"}
	}
	if !a.runConfigured {
		if run == nil {
			a.mu.Unlock()
			return &ConfigError{Field: "run", Message: "hook is required"}
		}
		a.hooks.run = run
		a.runConfigured = true
	}
	a.booted = true
	hooks := a.hooks
	a.mu.Unlock()

	a.bindSignals()

	go a.runPipeline(ctx, hooks)
	return nil
}

// BootWait boots the pipeline with exit-on-error disabled and blocks until
// its first run/error transition: it returns nil once the run phase has
// completed, or the captured failure if register or run failed. The
// remainder of the pipeline (onComplete, onFinally) still runs.
//
// Use BootWait when the caller drives further logic itself after setup
// completes instead of handing a long-lived run phase to the controller.
// The configured run hook is used; when none was configured the run phase
// is a no-op.
func (a *App) BootWait(ctx context.Context) error {
	a.mu.Lock()
	if a.booted {
		a.mu.Unlock()
		return &ConfigError{Message: "already booted"}
	}
	a.exitOnError = false
	if !a.runConfigured {
		a.hooks.run = noopHook
		a.runConfigured = true
	}
	a.mu.Unlock()

	if err := a.Boot(ctx, nil); err != nil {
		return err
	}

	select {
	case err := <-a.runDone:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runPipeline executes the ordered phase sequence for one boot. Phases run
// strictly sequentially; no phase starts before the previous one's outcome
// is known.
func (a *App) runPipeline(ctx context.Context, hooks hookSet) {
	logger := a.logger.With(slog.String("boot_id", a.bootID))
	logger.Debug("boot started")
	a.emitEvent(ctx, &Event{Type: EventBootStarted})

	var failure error

	// Setup failures must never allow the main phase to execute.
	if err := a.runPhase(ctx, logger, PhaseRegister, hooks.register); err != nil {
		failure = err
		a.settleRun(failure)
	} else {
		if err := a.runPhase(ctx, logger, PhaseRun, hooks.run); err != nil {
			failure = err
		}
		a.settleRun(failure)
	}

	if failure == nil {
		if err := a.runPhase(ctx, logger, PhaseComplete, hooks.onComplete); err != nil {
			failure = err
		}
	}

	if failure != nil {
		a.emitEvent(ctx, &Event{Type: EventBootFailed, Err: failure})
		a.runErrorHook(ctx, logger, hooks.onError, failure)
	} else {
		a.emitEvent(ctx, &Event{Type: EventBootCompleted})
	}

	// The finalizer runs unconditionally, exactly once per boot. There is
	// no recovery stage past it, so its own failure is only reported.
	if err := a.runPhase(ctx, logger, PhaseFinally, hooks.onFinally); err != nil {
		logger.Error("finalizer failed", slog.Any("error", err))
	}

	if failure != nil && a.exitOnError {
		a.Exit(codeFromError(failure))
	}
}

// runErrorHook invokes the failure reporter with the same panic safety as
// runPhase: a panicking reporter is logged and must not unwind the pipeline
// goroutine, so onFinally still runs afterwards.
func (a *App) runErrorHook(ctx context.Context, logger *slog.Logger, hook ErrorHook, failure error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("error hook panic",
				slog.Any("panic", r),
				slog.Any("error", failure),
			)
		}
	}()

	if hook == nil {
		return
	}
	hook(ctx, failure)
}

// settleRun settles the BootWait channel once per boot, at the pipeline's
// first run/error transition.
func (a *App) settleRun(err error) {
	select {
	case a.runDone <- err:
	default:
	}
}

// runPhase executes one hook with timing, event emission, and panic
// recovery. A panicking hook is captured as a phase failure rather than
// tearing down the pipeline goroutine.
func (a *App) runPhase(ctx context.Context, logger *slog.Logger, phase Phase, hook Hook) (err error) {
	a.emitEvent(ctx, &Event{Type: EventPhaseStarted, Phase: phase})
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		if r := recover(); r != nil {
			err = &PhaseError{Phase: phase, Cause: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			logger.Debug("phase failed",
				slog.String("phase", string(phase)),
				slog.Any("error", err),
				slog.Int64("duration_ms", duration.Milliseconds()),
			)
			a.emitEvent(ctx, &Event{Type: EventPhaseFailed, Phase: phase, Duration: duration, Err: err})
			return
		}
		logger.Debug("phase completed",
			slog.String("phase", string(phase)),
			slog.Int64("duration_ms", duration.Milliseconds()),
		)
		a.emitEvent(ctx, &Event{Type: EventPhaseCompleted, Phase: phase, Duration: duration})
	}()

	if hook == nil {
		return nil
	}
	if hookErr := hook(ctx); hookErr != nil {
		return &PhaseError{Phase: phase, Cause: hookErr}
	}
	return nil
}

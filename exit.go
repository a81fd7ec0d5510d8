package liftoff

import (
	"context"
	"log/slog"
)

// Exit terminates the process with the given code. If the App is booted,
// the teardown hook runs first; teardown is best-effort cleanup, so its
// outcome never changes the exit code. If the App was never booted, or has
// already started exiting, the process terminates immediately: a second
// trigger (an interrupt arriving during teardown, say) cannot re-run
// teardown.
//
// Exit is the handler bound to OS termination signals, so teardown runs
// exactly once whether shutdown was requested by application code or by
// the environment.
func (a *App) Exit(code int) {
	a.mu.Lock()
	if !a.booted {
		a.mu.Unlock()
		a.exit(code)
		return
	}
	a.booted = false
	hooks := a.hooks
	stop := a.stopSignals
	a.mu.Unlock()

	ctx := context.Background()
	logger := a.logger.With(slog.String("boot_id", a.bootID))

	if err := a.runPhase(ctx, logger, PhaseTeardown, hooks.teardown); err != nil {
		logger.Error("teardown failed", slog.Any("error", err))
	}

	a.emitEvent(ctx, &Event{Type: EventExit, Code: code})
	logger.Debug("exiting", slog.Int("code", code))

	if stop != nil {
		stop()
	}
	a.exit(code)
}

package liftoff

import (
	"log/slog"
	"os"
	"os/signal"
)

// bindSignals maps termination requests from the environment onto Exit.
// The channel and goroutine belong to this App instance, so multiple
// controllers (in tests, for example) each see only their own binding.
//
// Exit clears the boot flag before teardown, so a second delivery while
// teardown is still running terminates immediately instead of starting a
// second teardown pass.
func (a *App) bindSignals() {
	if len(a.signals) == 0 {
		return
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, a.signals...)

	a.mu.Lock()
	a.stopSignals = func() { signal.Stop(ch) }
	a.mu.Unlock()

	go func() {
		for sig := range ch {
			a.logger.Info("termination signal received",
				slog.String("signal", sig.String()),
				slog.String("boot_id", a.bootID),
			)
			a.Exit(1)
		}
	}()
}

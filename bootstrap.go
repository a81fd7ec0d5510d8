package liftoff

import "context"

// Bootstrap runs only the setup side of the lifecycle: it constructs a
// controller with the given register hook, a no-op run phase, and
// exit-on-error disabled, then blocks until register has completed. It
// returns nil once setup succeeded, or register's failure unchanged
// (reachable through errors.Is/As via *PhaseError).
//
// This lets a caller await environment setup and then invoke their real
// entrypoint themselves, instead of handing it to the controller:
//
//	if err := liftoff.Bootstrap(ctx, loadEnv); err != nil {
//		log.Fatal(err)
//	}
//	runServer()
//
// The process is never terminated by Bootstrap; failures are returned, not
// escalated.
func Bootstrap(ctx context.Context, register Hook, opts ...Option) error {
	if register == nil {
		return &ConfigError{Field: "register", Message: "hook is required"}
	}

	opts = append(opts, WithRegister(register), WithExitOnError(false))
	app, err := New(opts...)
	if err != nil {
		return err
	}

	return app.BootWait(ctx)
}

// Package liftoff orchestrates the lifecycle of a process around a small set
// of caller-supplied phases: setup (register), main entry (run), success
// (onComplete), failure (onError), an always-run finalizer (onFinally), and
// exit-time cleanup (teardown).
//
// The App sequences the phases deterministically, captures a failure raised
// in any phase, and terminates the host process with a well-defined exit
// code. OS termination signals are mapped to the same exit path, so teardown
// runs exactly once whether shutdown was triggered by application code or by
// an operator interrupt.
//
// # Quick Start
//
//	func main() {
//		app, err := liftoff.New(
//			liftoff.WithRegister(func(ctx context.Context) error {
//				return loadConfig()
//			}),
//			liftoff.WithTeardown(func(ctx context.Context) error {
//				return closeConnections()
//			}),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		if err := app.Boot(context.Background(), func(ctx context.Context) error {
//			return serve() // long-running; process stays up until Exit
//		}); err != nil {
//			log.Fatal(err)
//		}
//
//		select {} // the signal adapter drives shutdown
//	}
//
// Hooks may only be replaced before Boot; a mutation afterwards fails with a
// *ConfigError so failure attribution stays unambiguous for the in-flight
// run.
//
// Callers who want to drive their own entrypoint after setup can use
// Bootstrap, which runs register with exit-on-error disabled and returns its
// outcome instead of orchestrating a main phase.
package liftoff

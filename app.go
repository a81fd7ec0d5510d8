package liftoff

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"syscall"

	"github.com/google/uuid"
)

// App is the lifecycle controller. It owns the current hook set and the
// boot-state flag, sequences the phases for exactly one Boot per process
// lifetime, and terminates the process through Exit.
//
// Each App instance is fully isolated: its signal binding, hooks, and event
// handlers are its own, so controllers in tests do not interfere.
type App struct {
	hooks           hookSet
	runConfigured   bool
	errorConfigured bool
	exitOnError     bool
	signals         []os.Signal
	exit            func(code int)
	logger          *slog.Logger
	bootID          string

	mu     sync.Mutex
	booted bool

	eventMu       sync.RWMutex
	eventHandlers map[EventType][]EventHandler

	// settled once per boot, at the pipeline's first run/error transition
	runDone chan error

	stopSignals func()
}

// New creates a lifecycle controller. Options configure hooks and behavior;
// every phase left unset gets a default no-op (a logging reporter for the
// error hook). The run hook may alternatively be supplied to Boot.
//
// Example:
//
//	app, err := liftoff.New(
//		liftoff.WithRegister(setup),
//		liftoff.WithTeardown(cleanup),
//	)
func New(opts ...Option) (*App, error) {
	a := &App{
		exitOnError:   true,
		signals:       []os.Signal{os.Interrupt, syscall.SIGTERM},
		exit:          os.Exit,
		logger:        slog.Default(),
		bootID:        uuid.New().String(),
		eventHandlers: make(map[EventType][]EventHandler),
		runDone:       make(chan error, 1),
	}
	a.hooks = defaultHookSet(a.logger)

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	return a, nil
}

// BootID returns the identifier assigned to this controller's boot cycle.
// It is carried on every event and log line the controller emits.
func (a *App) BootID() string {
	return a.bootID
}

// setHook guards every mutator: hooks may only change before Boot, so a
// hook cannot be swapped out mid-flight.
func (a *App) setHook(name string, assign func()) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.booted {
		return errAlreadyBooted(name)
	}
	assign()
	return nil
}

// SetRegister replaces the setup phase.
func (a *App) SetRegister(fn Hook) error {
	if fn == nil {
		return &ConfigError{Field: "register", Message: "hook cannot be nil"}
	}
	return a.setHook("register", func() { a.hooks.register = fn })
}

// SetRun replaces the main phase. A run hook configured here takes
// precedence over the argument later passed to Boot.
func (a *App) SetRun(fn Hook) error {
	if fn == nil {
		return &ConfigError{Field: "run", Message: "hook cannot be nil"}
	}
	return a.setHook("run", func() {
		a.hooks.run = fn
		a.runConfigured = true
	})
}

// SetOnComplete replaces the success phase.
func (a *App) SetOnComplete(fn Hook) error {
	if fn == nil {
		return &ConfigError{Field: "onComplete", Message: "hook cannot be nil"}
	}
	return a.setHook("onComplete", func() { a.hooks.onComplete = fn })
}

// SetOnError replaces the failure reporter.
func (a *App) SetOnError(fn ErrorHook) error {
	if fn == nil {
		return &ConfigError{Field: "onError", Message: "hook cannot be nil"}
	}
	return a.setHook("onError", func() {
		a.hooks.onError = fn
		a.errorConfigured = true
	})
}

// SetOnFinally replaces the always-run finalizer.
func (a *App) SetOnFinally(fn Hook) error {
	if fn == nil {
		return &ConfigError{Field: "onFinally", Message: "hook cannot be nil"}
	}
	return a.setHook("onFinally", func() { a.hooks.onFinally = fn })
}

// SetTeardown replaces the exit-time cleanup phase.
func (a *App) SetTeardown(fn Hook) error {
	if fn == nil {
		return &ConfigError{Field: "teardown", Message: "hook cannot be nil"}
	}
	return a.setHook("teardown", func() { a.hooks.teardown = fn })
}

// SetExitOnError controls whether a pipeline failure terminates the process
// after onFinally. Defaults to true.
func (a *App) SetExitOnError(v bool) error {
	return a.setHook("exitOnError", func() { a.exitOnError = v })
}

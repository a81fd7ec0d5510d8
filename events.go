package liftoff

import (
	"context"
	"time"
)

// Phase names one step of the lifecycle pipeline.
type Phase string

const (
	PhaseRegister Phase = "register"
	PhaseRun      Phase = "run"
	PhaseComplete Phase = "complete"
	PhaseFinally  Phase = "finally"
	PhaseTeardown Phase = "teardown"
)

// EventType identifies the type of lifecycle event.
type EventType string

const (
	EventBootStarted    EventType = "boot.started"
	EventBootCompleted  EventType = "boot.completed"
	EventBootFailed     EventType = "boot.failed"
	EventPhaseStarted   EventType = "phase.started"
	EventPhaseCompleted EventType = "phase.completed"
	EventPhaseFailed    EventType = "phase.failed"
	EventExit           EventType = "exit"
)

// Event describes one lifecycle transition. Phase is set on phase.* events,
// Err on phase.failed and boot.failed, Code on exit, and Duration on
// phase.completed and phase.failed.
type Event struct {
	Type      EventType
	Timestamp time.Time
	BootID    string
	Phase     Phase
	Duration  time.Duration
	Code      int
	Err       error
}

// EventHandler processes lifecycle events. Handlers are called
// synchronously, in registration order, from the pipeline goroutine.
// If a handler panics, the panic is recovered and logged, and execution
// continues.
type EventHandler func(ctx context.Context, event *Event)

// OnEvent registers an event handler for the given event type. Multiple
// handlers may be registered for the same type.
func (a *App) OnEvent(eventType EventType, handler EventHandler) {
	a.eventMu.Lock()
	defer a.eventMu.Unlock()

	a.eventHandlers[eventType] = append(a.eventHandlers[eventType], handler)
}

// emitEvent dispatches an event to all registered handlers, recovering
// handler panics so observers cannot break the pipeline.
func (a *App) emitEvent(ctx context.Context, event *Event) {
	a.eventMu.RLock()
	handlers := a.eventHandlers[event.Type]
	a.eventMu.RUnlock()

	event.BootID = a.bootID
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					a.logger.Error("event handler panic",
						"event_type", event.Type,
						"panic", r,
					)
				}
			}()
			handler(ctx, event)
		}()
	}
}

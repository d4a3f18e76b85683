package input

import "github.com/zoobzio/capitan"

// Controller lifecycle signals.
var (
	// ControllerBound is emitted when a controller attaches at mount.
	ControllerBound = capitan.NewSignal(
		"loom.input.controller.bound",
		"Input controller bound to element property",
	)

	// ControllerUnbound is emitted when a controller's subscription is
	// killed at unmount.
	ControllerUnbound = capitan.NewSignal(
		"loom.input.controller.unbound",
		"Input controller unbound from element property",
	)

	// ControllerRejected is emitted when the mount-time compatibility check
	// fails and no controller is installed.
	ControllerRejected = capitan.NewSignal(
		"loom.input.controller.rejected",
		"Input controller rejected by compatibility check",
	)
)

// Reconciliation signals.
var (
	// EventAccepted is emitted when a DOM event passes the processor and is
	// delivered to the observer.
	EventAccepted = capitan.NewSignal(
		"loom.input.event.accepted",
		"DOM event accepted by processor",
	)

	// EventReverted is emitted when a DOM event is filtered out and the DOM
	// is reset to the last accepted value.
	EventReverted = capitan.NewSignal(
		"loom.input.event.reverted",
		"DOM event rejected; property reset to last accepted value",
	)
)

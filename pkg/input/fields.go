package input

import "github.com/zoobzio/capitan"

// Field keys for controller events.
var (
	// KeyTag is the element's tag name.
	KeyTag = capitan.NewStringKey("tag")

	// KeyProperty is the controlled property name.
	KeyProperty = capitan.NewStringKey("property")

	// KeyEvent is the DOM event type involved.
	KeyEvent = capitan.NewStringKey("event")

	// KeyError is the error message when a binding is rejected.
	KeyError = capitan.NewStringKey("error")
)

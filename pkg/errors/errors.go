// Package errors provides structured error handling for the Loom framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of a binding configuration error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDuplicateController indicates a second controller was requested
	// for a property that already has one.
	KindDuplicateController
	// KindConflictingBinder indicates a one-way binder and a controller
	// both target the same property.
	KindConflictingBinder
	// KindUnsupportedElement indicates the element kind has no controllable
	// property mapping (file inputs, plain containers).
	KindUnsupportedElement
	// KindPropertyEventMismatch indicates the requested property/event pair
	// does not match what the element's resolved kind expects.
	KindPropertyEventMismatch
	// KindUnknownProperty indicates the caller requested control of a
	// property outside the controllable allow-list.
	KindUnknownProperty
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateController:
		return "duplicate controller"
	case KindConflictingBinder:
		return "conflicting binder"
	case KindUnsupportedElement:
		return "unsupported element kind"
	case KindPropertyEventMismatch:
		return "property/event mismatch"
	case KindUnknownProperty:
		return "unknown controllable property"
	default:
		return "unknown"
	}
}

// BindError represents a binding configuration error. These are programmer
// errors in the UI declaration, surfaced synchronously at mount time; they
// are never retried.
type BindError struct {
	// Op is the operation that failed (e.g., "input.Controlled").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Element is the descriptive identity of the offending element,
	// including its type attribute when present (e.g., `<input type="checkbox">`).
	Element string
	// Property is the property the caller tried to control.
	Property string
	// Suggestion names the correct property/event pair when a mismatch was
	// detected, or lists the properties the element kind does support.
	Suggestion string
	// Err is the underlying error, if any.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindError) Error() string {
	msg := fmt.Sprintf("%s [%s] element=%s property=%q", e.Op, e.Kind, e.Element, e.Property)
	if e.Suggestion != "" {
		msg += ": " + e.Suggestion
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Is makes BindError match other BindErrors of the same Kind, so callers can
// test the taxonomy with errors.Is against a sentinel kind.
func (e *BindError) Is(target error) bool {
	t, ok := target.(*BindError)
	return ok && t.Kind == e.Kind
}

// ManifestError represents a failure to load or validate a custom-element
// capability manifest.
type ManifestError struct {
	// Path is the manifest file path.
	Path string
	// Tag is the offending element tag, if the error is entry-scoped.
	Tag string
	// Err is the underlying error.
	Err error
}

func (e *ManifestError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("manifest %s: tag %q: %v", e.Path, e.Tag, e.Err)
	}
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// Handler receives errors reported by the Loom framework.
type Handler interface {
	// HandleBindError is called when a binding configuration error occurs.
	HandleBindError(err *BindError)
}

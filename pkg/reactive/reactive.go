// Package reactive provides the minimal reactive surface the binding core
// consumes: value sources that can be observed within an ownership scope.
//
// This is deliberately not a general-purpose FRP engine. Loom's binding and
// ownership layers only need Foreach-style observation with scope-tied
// subscriptions; richer operators belong to whatever signal engine the
// application brings.
package reactive

import "github.com/go-loom/loom/pkg/owner"

// Source produces values of type T over time. Observation is always tied to
// an Owner so the subscription cannot outlive its scope.
type Source[T any] interface {
	// Foreach invokes fn for values produced by the source. Sources with a
	// current value (see Val) invoke fn with it immediately; pure streams
	// (see Bus) only deliver future emissions. The returned subscription is
	// owned by o and stops delivery when killed.
	Foreach(o *owner.Owner, fn func(T)) *owner.Subscription
}

// Observer receives values pushed out of the binding layer, e.g. processed
// DOM input events.
type Observer[T any] func(T)

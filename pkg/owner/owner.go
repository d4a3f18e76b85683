// Package owner provides the ownership lifecycle for reactive resources.
//
// Every subscription, controller, or other disposable resource created by
// Loom is owned by exactly one [Owner] for its lifetime. An Owner represents
// a lifecycle scope, typically an element's mounted state. When the scope
// ends the Owner kills every resource it tracks, exactly once, which is what
// keeps cyclic reactive graphs (signals owning subscriptions that reference
// signals) from becoming permanent leaks.
package owner

import (
	"fmt"
	"sync"
)

// Owned is a disposable resource registered with an Owner.
//
// Implementations must register with their Owner before doing any other
// work, so that no resource escapes tracking even if construction later
// fails. Kill is invoked by the Owner; unrelated code must never call it.
type Owned interface {
	// Kill releases the resource. Calling Kill more than once must not
	// double-release the underlying resource.
	Kill()
}

// Owner is a lifecycle scope holding a set of owned resources.
//
// Owners are NOT thread-safe for concurrent Own/KillAll from multiple
// goroutines racing with resource creation; like the rest of Loom they are
// meant to run on a single UI goroutine. The internal mutex only guards
// against reentrant kills.
type Owner struct {
	mu     sync.Mutex
	owned  []Owned
	killed bool
}

// NewOwner creates an empty, live Owner.
func NewOwner() *Owner {
	return &Owner{}
}

// Own registers a resource with this Owner.
//
// Passing an already-terminated Owner is a programming error: the scope is
// gone and nothing would ever dispose the resource, so Own panics rather
// than leak silently.
func (o *Owner) Own(resource Owned) {
	if resource == nil {
		return
	}
	o.mu.Lock()
	if o.killed {
		o.mu.Unlock()
		panic(fmt.Sprintf("owner: Own called on terminated Owner (resource %T)", resource))
	}
	o.owned = append(o.owned, resource)
	o.mu.Unlock()
}

// Release removes a resource from tracking without killing it. Used by
// resources that are disposed individually before their scope ends, so the
// later KillAll does not touch them again.
func (o *Owner) Release(resource Owned) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, r := range o.owned {
		if r == resource {
			o.owned[i] = nil
			return
		}
	}
}

// KillAll terminates the scope: every currently owned resource is killed in
// reverse registration order (LIFO), then the tracked set is cleared.
//
// Reverse order is deliberate and part of the contract: resources built on
// top of earlier resources are torn down first, mirroring construction.
// KillAll is idempotent; a second call is a no-op.
func (o *Owner) KillAll() {
	o.mu.Lock()
	if o.killed {
		o.mu.Unlock()
		return
	}
	o.killed = true
	owned := o.owned
	o.owned = nil
	o.mu.Unlock()

	for i := len(owned) - 1; i >= 0; i-- {
		if owned[i] != nil {
			owned[i].Kill()
		}
	}
}

// IsKilled reports whether the scope has been terminated.
func (o *Owner) IsKilled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.killed
}

// Count returns the number of currently tracked resources.
func (o *Owner) Count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, r := range o.owned {
		if r != nil {
			n++
		}
	}
	return n
}

// Package registry tracks which properties of custom elements may be
// controlled by the binding layer.
//
// Native form controls carry fixed policies; custom elements have to opt in.
// A custom element type declares zero or more capabilities, each naming a
// controllable property and the DOM events that signal user edits to it. An
// element type with no declared capability is not controllable.
package registry

import (
	"fmt"
	"strings"
	"sync"
)

// Capability declares one controllable property of a custom element type.
type Capability struct {
	// Property is the controlled property name ("value" or "checked").
	Property string
	// Events are the DOM event types that signal user edits to the property.
	Events []string
}

func (c Capability) validate(tag string) error {
	if !strings.Contains(tag, "-") {
		return fmt.Errorf("tag %q is not a custom element name (must contain a hyphen)", tag)
	}
	if c.Property != "value" && c.Property != "checked" {
		return fmt.Errorf("property %q is not controllable (must be \"value\" or \"checked\")", c.Property)
	}
	if len(c.Events) == 0 {
		return fmt.Errorf("capability for property %q declares no events", c.Property)
	}
	for _, ev := range c.Events {
		if strings.TrimSpace(ev) == "" {
			return fmt.Errorf("capability for property %q declares an empty event name", c.Property)
		}
	}
	return nil
}

// Registry holds capability declarations keyed by custom element tag name.
// Reads and writes are safe for concurrent use; manifest hot-reload swaps
// entries from a watcher goroutine while the UI goroutine resolves lookups.
type Registry struct {
	mu   sync.RWMutex
	caps map[string][]Capability
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{caps: make(map[string][]Capability)}
}

// Register declares a capability for a custom element tag. Multiple
// capabilities per tag are allowed as long as their properties differ.
func (r *Registry) Register(tag string, cap Capability) error {
	tag = strings.ToLower(tag)
	if err := cap.validate(tag); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.caps[tag] {
		if existing.Property == cap.Property {
			return fmt.Errorf("tag %q already declares a capability for property %q", tag, cap.Property)
		}
	}
	r.caps[tag] = append(r.caps[tag], cap)
	return nil
}

// Lookup returns the capabilities declared for a tag. An empty result means
// the element type is not controllable.
func (r *Registry) Lookup(tag string) []Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()
	caps := r.caps[strings.ToLower(tag)]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// Capability returns the declared capability for a specific property of a
// tag, if any.
func (r *Registry) Capability(tag, property string) (Capability, bool) {
	for _, c := range r.Lookup(tag) {
		if c.Property == property {
			return c, true
		}
	}
	return Capability{}, false
}

// replaceAll atomically swaps the registry contents. Used by manifest
// loading and hot reload.
func (r *Registry) replaceAll(caps map[string][]Capability) {
	r.mu.Lock()
	r.caps = caps
	r.mu.Unlock()
}

// Tags returns the tags with at least one declared capability.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.caps))
	for tag := range r.caps {
		tags = append(tags, tag)
	}
	return tags
}

// defaultRegistry backs the package-level functions. Applications that need
// isolated registries (tests, multi-tenant hosts) create their own.
var defaultRegistry = New()

// Default returns the process-wide registry consulted by the binding layer.
func Default() *Registry {
	return defaultRegistry
}

// Register declares a capability in the default registry.
func Register(tag string, cap Capability) error {
	return defaultRegistry.Register(tag, cap)
}

// Lookup queries the default registry.
func Lookup(tag string) []Capability {
	return defaultRegistry.Lookup(tag)
}

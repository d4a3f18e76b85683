// Package input implements controlled form bindings: the reconciliation
// engine that keeps one reactive value source, one DOM event sink and one
// element property in agreement without dropping either the user's edits or
// the upstream value.
package input

import (
	"fmt"
	"strings"

	"github.com/go-loom/loom/pkg/dom"
	"github.com/go-loom/loom/pkg/registry"
)

// controllableProps is the fixed allow-list of property names the engine
// knows how to control.
var controllableProps = map[string]bool{
	"value":   true,
	"checked": true,
}

// Policy is the untyped (property, events) pair an element kind exposes for
// controlling. Typed accessors are attached when a Config is built from it.
type Policy struct {
	// Property is the controllable property name.
	Property string
	// Events are the DOM events that trigger reconciliation.
	Events []string
}

func (p Policy) describe() string {
	return fmt.Sprintf("property %q with event(s) %s", p.Property, strings.Join(p.Events, "/"))
}

func (p Policy) hasEvent(event string) bool {
	for _, ev := range p.Events {
		if ev == event {
			return true
		}
	}
	return false
}

// elementPolicies resolves the controllable-property policies of an element
// from its kind at call time. An empty result is terminal: the element is
// not controllable, and callers must fail rather than default.
func elementPolicies(el *dom.Element, reg *registry.Registry) []Policy {
	switch dom.KindOf(el) {
	case dom.KindTextInput, dom.KindTextArea:
		// Reconcile on every keystroke.
		return []Policy{{Property: "value", Events: []string{"input"}}}
	case dom.KindCheckedInput:
		// Browsers disagree on which of input/click fires for checkboxes
		// and radios, so both are watched.
		return []Policy{{Property: "checked", Events: []string{"input", "click"}}}
	case dom.KindSelect:
		// "change" only: unlike text inputs it fires exactly when the
		// selection actually changes, and "input" support differs across
		// browsers.
		return []Policy{{Property: "value", Events: []string{"change"}}}
	case dom.KindCustom:
		caps := reg.Lookup(el.Tag())
		policies := make([]Policy, 0, len(caps))
		for _, c := range caps {
			policies = append(policies, Policy{Property: c.Property, Events: c.Events})
		}
		return policies
	default:
		// KindFileInput deliberately lands here: file inputs cannot have
		// their value set programmatically.
		return nil
	}
}

// Config is the immutable per-element-kind policy with typed accessors: the
// controlled property, its default value, the reconciliation events, and
// get/set of the live DOM value.
type Config[A comparable] struct {
	// Property is the controlled property name.
	Property string
	// Initial is the baseline written on controller construction.
	Initial A
	// Events are the DOM events that trigger reconciliation.
	Events []string
	// Get reads the live DOM value.
	Get func(*dom.Element) A
	// Set writes the DOM value.
	Set func(*dom.Element, A)
}

// configFromPolicy attaches typed property accessors to a policy. The zero
// value of A is the initial baseline ("" for value, false for checked).
func configFromPolicy[A comparable](p Policy) Config[A] {
	prop := p.Property
	return Config[A]{
		Property: prop,
		Events:   p.Events,
		Get: func(el *dom.Element) A {
			v, _ := el.Prop(prop).(A)
			return v
		},
		Set: func(el *dom.Element, v A) {
			el.SetProp(prop, v)
		},
	}
}

package input

import (
	"fmt"
	"strings"

	"github.com/go-loom/loom/pkg/dom"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/registry"
)

// checkControllerCompatibility validates a controller request against the
// element's state at mount time and returns the policy the controller will
// run under. Failures are configuration errors: they are reported and
// surfaced synchronously, never retried, and no subscription or listener
// patch is installed when they occur.
func checkControllerCompatibility(el *dom.Element, property, event string, reg *registry.Registry) (Policy, *errors.BindError) {
	const op = "input.Controlled"
	policies := elementPolicies(el, reg)

	if !controllableProps[property] {
		suggestion := "element supports no controllable properties"
		if len(policies) > 0 {
			suggestion = "controllable properties for this element: " + strings.Join(policyProps(policies), ", ")
		}
		return Policy{}, errors.ReportBindError(&errors.BindError{
			Op:         op,
			Kind:       errors.KindUnknownProperty,
			Element:    el.Describe(),
			Property:   property,
			Suggestion: suggestion,
		})
	}

	if len(policies) == 0 {
		return Policy{}, errors.ReportBindError(&errors.BindError{
			Op:         op,
			Kind:       errors.KindUnsupportedElement,
			Element:    el.Describe(),
			Property:   property,
			Suggestion: unsupportedSuggestion(el),
		})
	}

	matched, ok := findPolicy(policies, property)
	if !ok {
		return Policy{}, errors.ReportBindError(&errors.BindError{
			Op:         op,
			Kind:       errors.KindPropertyEventMismatch,
			Element:    el.Describe(),
			Property:   property,
			Suggestion: fmt.Sprintf("element kind %s expects %s", dom.KindOf(el), policies[0].describe()),
		})
	}

	if !matched.hasEvent(event) {
		return Policy{}, errors.ReportBindError(&errors.BindError{
			Op:         op,
			Kind:       errors.KindPropertyEventMismatch,
			Element:    el.Describe(),
			Property:   property,
			Suggestion: fmt.Sprintf("event %q does not reconcile %s; use %s", event, property, matched.describe()),
		})
	}

	if el.ControllerFor(property) != nil {
		return Policy{}, errors.ReportBindError(&errors.BindError{
			Op:         op,
			Kind:       errors.KindDuplicateController,
			Element:    el.Describe(),
			Property:   property,
			Suggestion: "a controller is already bound to this property; an element accepts one controller per property",
		})
	}

	if desc, bound := el.PropWriter(property); bound {
		return Policy{}, errors.ReportBindError(&errors.BindError{
			Op:         op,
			Kind:       errors.KindConflictingBinder,
			Element:    el.Describe(),
			Property:   property,
			Suggestion: "a " + desc + " already writes this property; a property cannot be both bound and controlled",
		})
	}

	return matched, nil
}

func findPolicy(policies []Policy, property string) (Policy, bool) {
	for _, p := range policies {
		if p.Property == property {
			return p, true
		}
	}
	return Policy{}, false
}

func policyProps(policies []Policy) []string {
	props := make([]string, 0, len(policies))
	for _, p := range policies {
		props = append(props, fmt.Sprintf("%q", p.Property))
	}
	return props
}

func unsupportedSuggestion(el *dom.Element) string {
	switch dom.KindOf(el) {
	case dom.KindFileInput:
		return "file inputs cannot be controlled: browsers forbid setting their value programmatically"
	case dom.KindCustom:
		return fmt.Sprintf("custom element %q declares no controllable capabilities; register them before mounting", el.Tag())
	default:
		return fmt.Sprintf("element kind %s supports no controllable properties", dom.KindOf(el))
	}
}

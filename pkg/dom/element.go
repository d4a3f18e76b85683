// Package dom provides the element and event-dispatch substrate that Loom's
// binding layer runs against.
//
// The package is backend-agnostic: property reads and writes go through the
// [Api] interface, and the default in-memory backend makes elements fully
// usable in native tests. A browser backend plugs in the real DOM without
// changing the binding layer.
package dom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-loom/loom/pkg/owner"
)

// Api adapts property access to the underlying platform. Implementations
// must be synchronous; Loom's reconciliation rules depend on reading the
// live value immediately before deciding whether to write.
type Api interface {
	// GetProp reads the current live value of a property.
	GetProp(el *Element, name string) any
	// SetProp writes a property value.
	SetProp(el *Element, name string, value any)
}

// memoryApi is the default backend: properties live on the element itself.
type memoryApi struct{}

func (memoryApi) GetProp(el *Element, name string) any {
	return el.props[name]
}

func (memoryApi) SetProp(el *Element, name string, value any) {
	el.props[name] = value
}

// Binder is applied to an element when it mounts. Binders that fail return a
// configuration error; the element surfaces it to the caller of Mount and
// installs nothing for that binding.
type Binder interface {
	Bind(el *Element, o *owner.Owner) error
}

// BinderFunc adapts a function to the Binder interface.
type BinderFunc func(el *Element, o *owner.Owner) error

// Bind implements Binder.
func (f BinderFunc) Bind(el *Element, o *owner.Owner) error {
	return f(el, o)
}

// Element is a single DOM-like node: a tag, attributes, properties, ordered
// event listeners and a mount lifecycle. Elements are NOT thread-safe; all
// access must happen on the UI goroutine.
type Element struct {
	tag   string
	attrs map[string]string
	api   Api
	props map[string]any

	listeners map[string][]*Listener
	binders   []Binder

	mounted    bool
	mountOwner *owner.Owner

	// Per-property claims used by the binding layer's compatibility checks.
	controllers map[string]any
	propWriters map[string]string
}

// NewElement creates an unmounted element with the default in-memory
// property backend.
func NewElement(tag string) *Element {
	return NewElementWithApi(tag, memoryApi{})
}

// NewElementWithApi creates an unmounted element backed by the given Api.
func NewElementWithApi(tag string, api Api) *Element {
	return &Element{
		tag:         strings.ToLower(tag),
		attrs:       make(map[string]string),
		api:         api,
		props:       make(map[string]any),
		listeners:   make(map[string][]*Listener),
		controllers: make(map[string]any),
		propWriters: make(map[string]string),
	}
}

// Tag returns the element's lowercase tag name.
func (el *Element) Tag() string {
	return el.tag
}

// SetAttribute sets an attribute (e.g. type="checkbox").
func (el *Element) SetAttribute(name, value string) *Element {
	el.attrs[strings.ToLower(name)] = value
	return el
}

// Attribute returns an attribute value and whether it is set.
func (el *Element) Attribute(name string) (string, bool) {
	v, ok := el.attrs[strings.ToLower(name)]
	return v, ok
}

// Prop reads a property through the element's Api.
func (el *Element) Prop(name string) any {
	return el.api.GetProp(el, name)
}

// SetProp writes a property through the element's Api.
func (el *Element) SetProp(name string, value any) {
	el.api.SetProp(el, name, value)
}

// StringProp reads a property as a string; unset or mistyped reads yield "".
func (el *Element) StringProp(name string) string {
	v, _ := el.Prop(name).(string)
	return v
}

// BoolProp reads a property as a bool; unset or mistyped reads yield false.
func (el *Element) BoolProp(name string) bool {
	v, _ := el.Prop(name).(bool)
	return v
}

// Describe returns the element's descriptive identity for error messages,
// including its type attribute when present: `<input type="checkbox">`.
func (el *Element) Describe() string {
	if t, ok := el.attrs["type"]; ok {
		return fmt.Sprintf("<%s type=%q>", el.tag, t)
	}
	return fmt.Sprintf("<%s>", el.tag)
}

// Amend schedules binders to be applied on the next mount.
func (el *Element) Amend(binders ...Binder) *Element {
	el.binders = append(el.binders, binders...)
	return el
}

// Mount activates the element: a fresh Owner is created for this mount
// lifetime and every amended binder is applied in order. The first binder
// error aborts the remaining binders and is returned; binders that already
// bound stay live until Unmount.
func (el *Element) Mount() error {
	if el.mounted {
		panic("dom: Mount called on already mounted element " + el.Describe())
	}
	el.mounted = true
	el.mountOwner = owner.NewOwner()
	for _, b := range el.binders {
		if err := b.Bind(el, el.mountOwner); err != nil {
			return err
		}
	}
	return nil
}

// Unmount deactivates the element: the mount Owner is killed, disposing
// every subscription created during this mount. The element may be mounted
// again afterwards.
func (el *Element) Unmount() {
	if !el.mounted {
		return
	}
	el.mounted = false
	o := el.mountOwner
	el.mountOwner = nil
	o.KillAll()
}

// IsMounted reports whether the element is currently mounted.
func (el *Element) IsMounted() bool {
	return el.mounted
}

// MountOwner returns the Owner for the current mount, or nil when unmounted.
func (el *Element) MountOwner() *owner.Owner {
	return el.mountOwner
}

// ControllerFor returns the controller token claimed for a property, or nil.
func (el *Element) ControllerFor(prop string) any {
	return el.controllers[prop]
}

// ClaimController records token as the active controller for a property.
// The binding layer checks ControllerFor before claiming; the element itself
// does not arbitrate.
func (el *Element) ClaimController(prop string, token any) {
	el.controllers[prop] = token
}

// ReleaseController clears the controller claim for a property, but only if
// token still holds it.
func (el *Element) ReleaseController(prop string, token any) {
	if el.controllers[prop] == token {
		delete(el.controllers, prop)
	}
}

// PropWriter returns the description of the one-way binder writing to a
// property, if any.
func (el *Element) PropWriter(prop string) (string, bool) {
	desc, ok := el.propWriters[prop]
	return desc, ok
}

// ClaimPropWriter records a one-way binder writing to a property.
func (el *Element) ClaimPropWriter(prop, desc string) {
	el.propWriters[prop] = desc
}

// ReleasePropWriter clears the one-way binder claim for a property.
func (el *Element) ReleasePropWriter(prop string) {
	delete(el.propWriters, prop)
}

// ClaimedProps returns the sorted list of properties currently claimed by
// either a controller or a one-way binder. Used in diagnostics.
func (el *Element) ClaimedProps() []string {
	set := make(map[string]struct{})
	for p := range el.controllers {
		set[p] = struct{}{}
	}
	for p := range el.propWriters {
		set[p] = struct{}{}
	}
	props := make([]string, 0, len(set))
	for p := range set {
		props = append(props, p)
	}
	sort.Strings(props)
	return props
}

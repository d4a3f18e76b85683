package input

import (
	"context"

	"github.com/zoobzio/capitan"

	"github.com/go-loom/loom/pkg/dom"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/owner"
	"github.com/go-loom/loom/pkg/reactive"
	"github.com/go-loom/loom/pkg/registry"
)

// Updater pairs a controllable property name with the reactive source that
// drives it.
type Updater[A comparable] struct {
	property string
	source   reactive.Source[A]
}

// Value drives the element's "value" property from a string source.
func Value(src reactive.Source[string]) Updater[string] {
	return UpdaterFor("value", src)
}

// Checked drives the element's "checked" property from a bool source.
func Checked(src reactive.Source[bool]) Updater[bool] {
	return UpdaterFor("checked", src)
}

// UpdaterFor drives an arbitrary property name. Property names outside the
// controllable allow-list are rejected at mount with a descriptive error;
// this constructor exists so the rejection is testable and so future
// allow-list growth needs no new API.
func UpdaterFor[A comparable](property string, src reactive.Source[A]) Updater[A] {
	return Updater[A]{property: property, source: src}
}

// Sink pairs the DOM event the caller listens to with an observer for the
// processed values, plus an optional filter/transform processor. The
// processor decides per event whether the observer runs at all.
type Sink[A comparable, B any] struct {
	event    string
	process  func(dom.Event, A) (B, bool)
	observer reactive.Observer[B]
}

// SinkOn builds a sink for an arbitrary event with an explicit processor.
// process receives the raw event and the live DOM value and returns the
// value to deliver plus whether the event is accepted.
func SinkOn[A comparable, B any](event string, process func(dom.Event, A) (B, bool), observer reactive.Observer[B]) Sink[A, B] {
	return Sink[A, B]{event: event, process: process, observer: observer}
}

// OnInput observes the live "value" string on every input event.
func OnInput(observer reactive.Observer[string]) Sink[string, string] {
	return SinkOn("input", acceptLive[string], observer)
}

// OnChange observes the live "value" string on change events (selects).
func OnChange(observer reactive.Observer[string]) Sink[string, string] {
	return SinkOn("change", acceptLive[string], observer)
}

// OnClick observes the live "checked" state on click events (checkboxes and
// radios).
func OnClick(observer reactive.Observer[bool]) Sink[bool, bool] {
	return SinkOn("click", acceptLive[bool], observer)
}

func acceptLive[A comparable](_ dom.Event, live A) (A, bool) {
	return live, true
}

// Filter narrows the sink: events whose processed value fails pred are
// rejected, which means the observer is skipped and the DOM is reset to the
// last accepted value.
func (s Sink[A, B]) Filter(pred func(B) bool) Sink[A, B] {
	inner := s.process
	s.process = func(ev dom.Event, live A) (B, bool) {
		v, ok := inner(ev, live)
		if !ok {
			return v, false
		}
		return v, pred(v)
	}
	return s
}

// Controlled binds one reactive value source and one event sink to one
// element property. The returned binder is applied at mount; all
// compatibility checking happens then, because the element's effective kind
// (its type attribute) is not final until mount.
func Controlled[A comparable, B any](up Updater[A], sink Sink[A, B]) dom.Binder {
	return dom.BinderFunc(func(el *dom.Element, o *owner.Owner) error {
		return bindController(el, o, up, sink, registry.Default())
	})
}

// ControlledWith is Controlled against an explicit capability registry.
func ControlledWith[A comparable, B any](reg *registry.Registry, up Updater[A], sink Sink[A, B]) dom.Binder {
	return dom.BinderFunc(func(el *dom.Element, o *owner.Owner) error {
		return bindController(el, o, up, sink, reg)
	})
}

func bindController[A comparable, B any](el *dom.Element, o *owner.Owner, up Updater[A], sink Sink[A, B], reg *registry.Registry) error {
	ctx := context.Background()

	policy, err := checkControllerCompatibility(el, up.property, sink.event, reg)
	if err != nil {
		capitan.Emit(ctx, ControllerRejected,
			KeyTag.Field(el.Tag()),
			KeyProperty.Field(up.property),
			KeyError.Field(err.Error()),
		)
		return err
	}

	cfg := configFromPolicy[A](policy)
	c := newController[A, B](el, cfg)
	el.ClaimController(cfg.Property, c)

	// The combined listener must observe events before any user-registered
	// listener, so validation and reset happen before user code reacts to a
	// possibly-reverted value. Splicing changes only the dispatch order;
	// the original registrations are untouched and the patch is undone by
	// removing the controller's listeners on unmount.
	combined := func(ev dom.Event) {
		live := cfg.Get(el)
		v, ok := sink.process(ev, live)
		if ok {
			capitan.Emit(ctx, EventAccepted,
				KeyTag.Field(el.Tag()),
				KeyProperty.Field(cfg.Property),
				KeyEvent.Field(ev.Type),
			)
			sink.observer(v)
			// Runs strictly after the observer's propagation completed.
			c.resetAfterAccepted()
		} else {
			capitan.Emit(ctx, EventReverted,
				KeyTag.Field(el.Tag()),
				KeyProperty.Field(cfg.Property),
				KeyEvent.Field(ev.Type),
			)
			c.resetAfterRejected()
		}
	}

	patched := make([]*dom.Listener, 0, len(cfg.Events))
	for _, eventType := range cfg.Events {
		patched = append(patched, el.SpliceListenerFirst(eventType, combined))
	}

	patchSub := owner.NewSubscription(o, func() {
		for _, l := range patched {
			l.Remove()
		}
		el.ReleaseController(cfg.Property, c)
		capitan.Emit(ctx, ControllerUnbound,
			KeyTag.Field(el.Tag()),
			KeyProperty.Field(cfg.Property),
		)
	})

	srcSub := up.source.Foreach(o, c.onSourceValue)

	// One composite handle tears down the upstream subscription and the
	// DOM-listener patch together; unmount kills it via the mount Owner.
	owner.Composite(o, srcSub, patchSub)

	capitan.Emit(ctx, ControllerBound,
		KeyTag.Field(el.Tag()),
		KeyProperty.Field(cfg.Property),
		KeyEvent.Field(sink.event),
	)
	return nil
}

// BindValue installs a plain one-way binder writing a string source into the
// element's "value" property. One-way binders claim the property so a later
// controller on the same property is detected as a conflict.
func BindValue(src reactive.Source[string]) dom.Binder {
	return bindProp("input.BindValue", "value", src)
}

// BindChecked installs a plain one-way binder writing a bool source into the
// element's "checked" property.
func BindChecked(src reactive.Source[bool]) dom.Binder {
	return bindProp("input.BindChecked", "checked", src)
}

func bindProp[A comparable](op, property string, src reactive.Source[A]) dom.Binder {
	return dom.BinderFunc(func(el *dom.Element, o *owner.Owner) error {
		if c := el.ControllerFor(property); c != nil {
			return errors.ReportBindError(&errors.BindError{
				Op:         op,
				Kind:       errors.KindConflictingBinder,
				Element:    el.Describe(),
				Property:   property,
				Suggestion: "the property is already controlled; remove the one-way binder or the controller",
			})
		}
		if desc, ok := el.PropWriter(property); ok {
			return errors.ReportBindError(&errors.BindError{
				Op:         op,
				Kind:       errors.KindConflictingBinder,
				Element:    el.Describe(),
				Property:   property,
				Suggestion: "another one-way binder (" + desc + ") already writes this property",
			})
		}
		el.ClaimPropWriter(property, "one-way "+property+" binder")
		owner.NewSubscription(o, func() {
			el.ReleasePropWriter(property)
		})
		src.Foreach(o, func(v A) {
			el.SetProp(property, v)
		})
		return nil
	})
}

package dom

// Event is a dispatched DOM-like event.
type Event struct {
	// Type is the event name ("input", "click", "change", ...).
	Type string
	// Target is the element the event was dispatched on.
	Target *Element
}

// Listener is a registered event listener handle. Handles identify the
// logical registration; the element's dispatch list references them, so
// splicing the dispatch order never invalidates a handle.
type Listener struct {
	el        *Element
	eventType string
	fn        func(Event)
	removed   bool
}

// Remove unregisters the listener. Safe to call more than once.
func (l *Listener) Remove() {
	if l.removed {
		return
	}
	l.removed = true
	regs := l.el.listeners[l.eventType]
	for i, reg := range regs {
		if reg == l {
			l.el.listeners[l.eventType] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
}

// AddEventListener registers fn for an event type, appended to the end of
// the dispatch order (browser semantics).
func (el *Element) AddEventListener(eventType string, fn func(Event)) *Listener {
	l := &Listener{el: el, eventType: eventType, fn: fn}
	el.listeners[eventType] = append(el.listeners[eventType], l)
	return l
}

// SpliceListenerFirst registers fn so that it observes events BEFORE every
// listener currently registered for the event type. Against a real browser
// backend this is done by removing all current registrations, adding fn,
// then re-adding the originals in their original relative order; here the
// dispatch list is explicit so the splice is direct. Only the dispatch order
// changes: the original listeners' handles and logical bookkeeping are
// untouched, and removing the returned handle restores the original set
// exactly.
func (el *Element) SpliceListenerFirst(eventType string, fn func(Event)) *Listener {
	l := &Listener{el: el, eventType: eventType, fn: fn}
	existing := el.listeners[eventType]
	regs := make([]*Listener, 0, len(existing)+1)
	regs = append(regs, l)
	regs = append(regs, existing...)
	el.listeners[eventType] = regs
	return l
}

// ListenerCount returns the number of listeners registered for an event
// type. Used in diagnostics and tests.
func (el *Element) ListenerCount(eventType string) int {
	return len(el.listeners[eventType])
}

// DispatchEvent delivers an event to the element's listeners in dispatch
// order. The list is snapshotted first so listeners added during dispatch do
// not receive the current event, and a listener removed mid-dispatch is
// skipped (browser semantics). Dispatch is synchronous and events never nest
// concurrently; Loom's reset-after-listener ordering relies on this.
func (el *Element) DispatchEvent(ev Event) {
	if ev.Target == nil {
		ev.Target = el
	}
	regs := el.listeners[ev.Type]
	snapshot := make([]*Listener, len(regs))
	copy(snapshot, regs)
	for _, l := range snapshot {
		if !l.removed {
			l.fn(ev)
		}
	}
}

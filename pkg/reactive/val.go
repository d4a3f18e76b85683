package reactive

import "github.com/go-loom/loom/pkg/owner"

// Val holds a current value and notifies subscribers when it changes.
//
// Val is NOT thread-safe. Like the rest of Loom it must only be accessed
// from the UI goroutine.
type Val[T any] struct {
	value     T
	listeners map[int]func(T)
	nextID    int
	equals    func(a, b T) bool
}

// NewVal creates a Val with the given initial value. Comparable value types
// get change-suppression for free; for other types every Set notifies.
func NewVal[T comparable](initial T) *Val[T] {
	return &Val[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
		equals:    func(a, b T) bool { return a == b },
	}
}

// NewValWithEquality creates a Val using a custom equality function to
// suppress redundant notifications. A nil equals disables suppression.
func NewValWithEquality[T any](initial T, equals func(a, b T) bool) *Val[T] {
	return &Val[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
		equals:    equals,
	}
}

// Value returns the current value.
func (v *Val[T]) Value() T {
	return v.value
}

// Set updates the value and notifies subscribers. If the new value equals
// the current one (per the Val's equality), no notification is sent.
func (v *Val[T]) Set(value T) {
	if v.equals != nil && v.equals(v.value, value) {
		v.value = value
		return
	}
	v.value = value
	for _, fn := range v.listeners {
		fn(value)
	}
}

// Update applies a transformation to the current value.
func (v *Val[T]) Update(transform func(T) T) {
	v.Set(transform(v.value))
}

// Foreach invokes fn with the current value immediately, then with every
// subsequent change, until the returned subscription is killed.
func (v *Val[T]) Foreach(o *owner.Owner, fn func(T)) *owner.Subscription {
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	sub := owner.NewSubscription(o, func() {
		delete(v.listeners, id)
	})
	fn(v.value)
	return sub
}

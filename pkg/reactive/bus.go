package reactive

import "github.com/go-loom/loom/pkg/owner"

// Bus is an event stream with no current value: subscribers only see
// emissions that happen after they subscribe.
//
// Bus is NOT thread-safe; UI goroutine only.
type Bus[T any] struct {
	listeners map[int]func(T)
	nextID    int
}

// NewBus creates an empty event bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{listeners: make(map[int]func(T))}
}

// Emit delivers a value to all current subscribers.
func (b *Bus[T]) Emit(value T) {
	for _, fn := range b.listeners {
		fn(value)
	}
}

// Foreach invokes fn for every emission after this call, until the returned
// subscription is killed. Unlike Val, no value is delivered immediately.
func (b *Bus[T]) Foreach(o *owner.Owner, fn func(T)) *owner.Subscription {
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	return owner.NewSubscription(o, func() {
		delete(b.listeners, id)
	})
}

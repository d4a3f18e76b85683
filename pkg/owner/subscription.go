package owner

// Subscription is the standard Owned resource: a cleanup function tied to an
// Owner's scope. It registers with the Owner on construction, before
// anything else can observe it.
type Subscription struct {
	owner   *Owner
	cleanup func()
	killed  bool
}

// NewSubscription creates a subscription owned by o. The cleanup function
// runs exactly once, either when the Owner's scope ends or when Kill is
// called directly.
func NewSubscription(o *Owner, cleanup func()) *Subscription {
	s := &Subscription{owner: o, cleanup: cleanup}
	o.Own(s)
	return s
}

// Kill runs the cleanup and detaches from the Owner. Safe to call more than
// once; only the first call has an effect.
func (s *Subscription) Kill() {
	if s.killed {
		return
	}
	s.killed = true
	if s.owner != nil {
		s.owner.Release(s)
	}
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

// IsKilled reports whether the subscription has been disposed.
func (s *Subscription) IsKilled() bool {
	return s.killed
}

// Composite bundles several subscriptions behind a single handle, so a
// caller holding one handle can tear down a whole wiring step at once.
// Members are killed in reverse order, matching Owner semantics.
func Composite(o *Owner, members ...*Subscription) *Subscription {
	for _, m := range members {
		if m != nil {
			// Members are managed through the composite from here on.
			o.Release(m)
		}
	}
	return NewSubscription(o, func() {
		for i := len(members) - 1; i >= 0; i-- {
			if members[i] != nil {
				members[i].Kill()
			}
		}
	})
}

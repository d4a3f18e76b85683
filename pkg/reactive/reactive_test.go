package reactive

import (
	"testing"

	"github.com/go-loom/loom/pkg/owner"
)

func TestVal_ForeachDeliversCurrentValueImmediately(t *testing.T) {
	o := owner.NewOwner()
	v := NewVal("hello")

	var got []string
	v.Foreach(o, func(s string) { got = append(got, s) })

	if len(got) != 1 || got[0] != "hello" {
		t.Fatalf("expected immediate delivery of current value, got %v", got)
	}

	v.Set("world")
	if len(got) != 2 || got[1] != "world" {
		t.Fatalf("expected delivery of change, got %v", got)
	}
}

func TestVal_SetSuppressesEqualValues(t *testing.T) {
	o := owner.NewOwner()
	v := NewVal(3)

	notifications := 0
	v.Foreach(o, func(int) { notifications++ })

	v.Set(3)
	if notifications != 1 {
		t.Errorf("expected no notification for equal value, got %d total", notifications)
	}

	v.Set(4)
	if notifications != 2 {
		t.Errorf("expected notification for changed value, got %d total", notifications)
	}
}

func TestVal_CustomEquality(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	o := owner.NewOwner()
	v := NewValWithEquality(user{ID: 1, Name: "ada"}, func(a, b user) bool {
		return a.ID == b.ID
	})

	notifications := 0
	v.Foreach(o, func(user) { notifications++ })

	v.Set(user{ID: 1, Name: "renamed"})
	if notifications != 1 {
		t.Errorf("expected same-ID update suppressed, got %d notifications", notifications)
	}

	v.Set(user{ID: 2, Name: "renamed"})
	if notifications != 2 {
		t.Errorf("expected new-ID update delivered, got %d notifications", notifications)
	}
}

func TestVal_SubscriptionKillStopsDelivery(t *testing.T) {
	o := owner.NewOwner()
	v := NewVal(0)

	count := 0
	sub := v.Foreach(o, func(int) { count++ })
	sub.Kill()

	v.Set(1)
	if count != 1 {
		t.Errorf("expected no delivery after kill, got %d", count)
	}
}

func TestVal_OwnerKillStopsDelivery(t *testing.T) {
	o := owner.NewOwner()
	v := NewVal(0)

	count := 0
	v.Foreach(o, func(int) { count++ })
	o.KillAll()

	v.Set(1)
	if count != 1 {
		t.Errorf("expected no delivery after owner teardown, got %d", count)
	}
}

func TestBus_ForeachDeliversOnlyFutureEmissions(t *testing.T) {
	o := owner.NewOwner()
	b := NewBus[string]()

	b.Emit("before")

	var got []string
	b.Foreach(o, func(s string) { got = append(got, s) })

	if len(got) != 0 {
		t.Fatalf("expected no immediate delivery from a bus, got %v", got)
	}

	b.Emit("after")
	if len(got) != 1 || got[0] != "after" {
		t.Fatalf("expected delivery of post-subscribe emission, got %v", got)
	}
}

func TestBus_SubscriptionKillStopsDelivery(t *testing.T) {
	o := owner.NewOwner()
	b := NewBus[int]()

	count := 0
	sub := b.Foreach(o, func(int) { count++ })
	b.Emit(1)
	sub.Kill()
	b.Emit(2)

	if count != 1 {
		t.Errorf("expected 1 delivery, got %d", count)
	}
}

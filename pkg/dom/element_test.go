package dom

import (
	"errors"
	"testing"

	"github.com/go-loom/loom/pkg/owner"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		tag      string
		typeAttr string
		want     Kind
	}{
		{"input", "", KindTextInput},
		{"input", "text", KindTextInput},
		{"input", "email", KindTextInput},
		{"input", "color", KindTextInput},
		{"input", "date", KindTextInput},
		{"input", "checkbox", KindCheckedInput},
		{"input", "radio", KindCheckedInput},
		{"input", "file", KindFileInput},
		{"textarea", "", KindTextArea},
		{"select", "", KindSelect},
		{"color-picker", "", KindCustom},
		{"div", "", KindUnknown},
		{"span", "", KindUnknown},
	}

	for _, tc := range cases {
		el := NewElement(tc.tag)
		if tc.typeAttr != "" {
			el.SetAttribute("type", tc.typeAttr)
		}
		if got := KindOf(el); got != tc.want {
			t.Errorf("KindOf(<%s type=%q>) = %s, want %s", tc.tag, tc.typeAttr, got, tc.want)
		}
	}
}

func TestKindOf_TypeAttributeResolvedAtCallTime(t *testing.T) {
	el := NewElement("input")
	if KindOf(el) != KindTextInput {
		t.Fatal("expected typeless input to resolve as text input")
	}
	el.SetAttribute("type", "checkbox")
	if KindOf(el) != KindCheckedInput {
		t.Error("expected kind to track the live type attribute")
	}
}

func TestElement_Describe(t *testing.T) {
	el := NewElement("input").SetAttribute("type", "checkbox")
	if got := el.Describe(); got != `<input type="checkbox">` {
		t.Errorf("unexpected description %q", got)
	}
	if got := NewElement("select").Describe(); got != "<select>" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestElement_DispatchOrderFollowsRegistration(t *testing.T) {
	el := NewElement("input")
	var order []string
	el.AddEventListener("input", func(Event) { order = append(order, "first") })
	el.AddEventListener("input", func(Event) { order = append(order, "second") })

	el.DispatchEvent(Event{Type: "input"})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected dispatch order %v", order)
	}
}

func TestElement_SpliceListenerFirstRunsBeforeExisting(t *testing.T) {
	el := NewElement("input")
	var order []string
	el.AddEventListener("input", func(Event) { order = append(order, "user1") })
	el.AddEventListener("input", func(Event) { order = append(order, "user2") })

	spliced := el.SpliceListenerFirst("input", func(Event) { order = append(order, "controller") })
	el.DispatchEvent(Event{Type: "input"})

	want := []string{"controller", "user1", "user2"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected dispatch order %v, want %v", order, want)
		}
	}

	// Removing the spliced listener must restore the original set and order.
	order = nil
	spliced.Remove()
	el.DispatchEvent(Event{Type: "input"})
	if len(order) != 2 || order[0] != "user1" || order[1] != "user2" {
		t.Fatalf("unexpected dispatch order after unsplice %v", order)
	}
	if el.ListenerCount("input") != 2 {
		t.Errorf("expected 2 listeners after unsplice, got %d", el.ListenerCount("input"))
	}
}

func TestElement_RemoveDuringDispatchCompletesCurrentEvent(t *testing.T) {
	el := NewElement("input")
	var order []string
	var second *Listener
	el.AddEventListener("input", func(Event) {
		order = append(order, "first")
		second.Remove()
	})
	second = el.AddEventListener("input", func(Event) { order = append(order, "second") })

	el.DispatchEvent(Event{Type: "input"})
	el.DispatchEvent(Event{Type: "input"})

	// A listener removed mid-dispatch must not fire for the current event.
	want := []string{"first", "first"}
	if len(order) != len(want) {
		t.Fatalf("unexpected dispatch log %v", order)
	}
}

func TestElement_MountAppliesBindersWithFreshOwner(t *testing.T) {
	el := NewElement("input")
	var owners []*owner.Owner
	el.Amend(BinderFunc(func(el *Element, o *owner.Owner) error {
		owners = append(owners, o)
		return nil
	}))

	if err := el.Mount(); err != nil {
		t.Fatalf("unexpected mount error: %v", err)
	}
	if !el.IsMounted() {
		t.Fatal("expected element to be mounted")
	}
	el.Unmount()
	if el.IsMounted() {
		t.Fatal("expected element to be unmounted")
	}
	if !owners[0].IsKilled() {
		t.Error("expected first mount owner to be killed on unmount")
	}

	if err := el.Mount(); err != nil {
		t.Fatalf("unexpected remount error: %v", err)
	}
	if len(owners) != 2 {
		t.Fatalf("expected binder to run once per mount, got %d runs", len(owners))
	}
	if owners[1] == owners[0] {
		t.Error("expected a fresh owner per mount")
	}
}

func TestElement_MountStopsAtFirstBinderError(t *testing.T) {
	el := NewElement("input")
	boom := errors.New("boom")
	ran := []string{}
	el.Amend(
		BinderFunc(func(*Element, *owner.Owner) error { ran = append(ran, "a"); return nil }),
		BinderFunc(func(*Element, *owner.Owner) error { ran = append(ran, "b"); return boom }),
		BinderFunc(func(*Element, *owner.Owner) error { ran = append(ran, "c"); return nil }),
	)

	if err := el.Mount(); !errors.Is(err, boom) {
		t.Fatalf("expected binder error from mount, got %v", err)
	}
	if len(ran) != 2 {
		t.Errorf("expected binders after the failure to be skipped, ran %v", ran)
	}
}

func TestElement_UnmountCancelsSubscriptions(t *testing.T) {
	el := NewElement("input")
	cleanups := 0
	el.Amend(BinderFunc(func(el *Element, o *owner.Owner) error {
		owner.NewSubscription(o, func() { cleanups++ })
		return nil
	}))

	if err := el.Mount(); err != nil {
		t.Fatalf("unexpected mount error: %v", err)
	}
	el.Unmount()
	if cleanups != 1 {
		t.Errorf("expected 1 cleanup on unmount, got %d", cleanups)
	}
	el.Unmount()
	if cleanups != 1 {
		t.Errorf("expected unmount to be idempotent, got %d cleanups", cleanups)
	}
}

func TestElement_ControllerClaims(t *testing.T) {
	el := NewElement("input")
	token := struct{ name string }{"controller"}

	el.ClaimController("value", &token)
	if el.ControllerFor("value") != &token {
		t.Fatal("expected claim to be visible")
	}

	other := struct{ name string }{"other"}
	el.ReleaseController("value", &other)
	if el.ControllerFor("value") != &token {
		t.Error("expected release by non-holder to be ignored")
	}

	el.ReleaseController("value", &token)
	if el.ControllerFor("value") != nil {
		t.Error("expected claim to be released")
	}
}

func TestElement_PropsThroughCustomApi(t *testing.T) {
	api := &recordingApi{props: map[string]any{}}
	el := NewElementWithApi("input", api)

	el.SetProp("value", "x")
	if el.StringProp("value") != "x" {
		t.Fatalf("expected value %q, got %q", "x", el.StringProp("value"))
	}
	if api.writes != 1 {
		t.Errorf("expected 1 write through api, got %d", api.writes)
	}
}

// recordingApi counts writes; used to assert redundant-write suppression.
type recordingApi struct {
	props  map[string]any
	writes int
}

func (a *recordingApi) GetProp(_ *Element, name string) any {
	return a.props[name]
}

func (a *recordingApi) SetProp(_ *Element, name string, value any) {
	a.writes++
	a.props[name] = value
}

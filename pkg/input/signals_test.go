package input

import "testing"

func TestControllerBound(t *testing.T) {
	if ControllerBound.Name() != "loom.input.controller.bound" {
		t.Errorf("expected name 'loom.input.controller.bound', got %q", ControllerBound.Name())
	}
}

func TestControllerUnbound(t *testing.T) {
	if ControllerUnbound.Name() != "loom.input.controller.unbound" {
		t.Errorf("expected name 'loom.input.controller.unbound', got %q", ControllerUnbound.Name())
	}
}

func TestControllerRejected(t *testing.T) {
	if ControllerRejected.Name() != "loom.input.controller.rejected" {
		t.Errorf("expected name 'loom.input.controller.rejected', got %q", ControllerRejected.Name())
	}
}

func TestEventAccepted(t *testing.T) {
	if EventAccepted.Name() != "loom.input.event.accepted" {
		t.Errorf("expected name 'loom.input.event.accepted', got %q", EventAccepted.Name())
	}
}

func TestEventReverted(t *testing.T) {
	if EventReverted.Name() != "loom.input.event.reverted" {
		t.Errorf("expected name 'loom.input.event.reverted', got %q", EventReverted.Name())
	}
}

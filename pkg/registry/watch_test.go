package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_LoadsInitialManifestSynchronously(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loom.yaml")
	if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := New()
	if err := r.Watch(ctx, path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Lookup("color-picker")) != 1 {
		t.Error("expected initial load before Watch returns")
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loom.yaml")
	if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 4)
	r := New()
	if err := r.Watch(ctx, path, func(err error) { reloaded <- err }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := `
schema: v1.0.0
elements:
  - tag: brand-new
    capabilities:
      - property: value
        events: [input]
`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-reloaded:
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if len(r.Lookup("brand-new")) != 1 {
		t.Error("expected reloaded declarations")
	}
	if len(r.Lookup("color-picker")) != 0 {
		t.Error("expected stale declarations to be replaced")
	}
}

func TestWatch_InvalidManifestKeepsPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loom.yaml")
	if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 4)
	r := New()
	if err := r.Watch(ctx, path, func(err error) { reloaded <- err }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.WriteFile(path, []byte("schema: v9.0.0"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-reloaded:
		if err == nil {
			t.Fatal("expected reload of an invalid manifest to fail")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if len(r.Lookup("color-picker")) != 1 {
		t.Error("expected previous declarations to survive a failed reload")
	}
}

func TestWatch_MissingManifestFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := New().Watch(ctx, filepath.Join(t.TempDir(), "absent.yaml"), nil)
	if err == nil {
		t.Fatal("expected an error for a missing manifest")
	}
}

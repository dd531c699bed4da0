package backend_test

import (
	"context"
	"errors"
	"testing"

	"ltask/internal/storage"
)

// exerciseKV runs the behavior every storage.KV must share.
func exerciseKV(t *testing.T, kv storage.KV) {
	t.Helper()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "tasks"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get on empty store: expected ErrNotFound, got %v", err)
	}

	if err := kv.Set(ctx, "tasks", []byte(`[1]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set(ctx, "tasks", []byte(`[2]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := kv.Get(ctx, "tasks")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[2]` {
		t.Errorf("expected [2], got %s", got)
	}

	if err := kv.Set(ctx, "other", []byte(`x`)); err != nil {
		t.Fatalf("Set other: %v", err)
	}
	if err := kv.Delete(ctx, "other"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := kv.Get(ctx, "other"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get after delete: expected ErrNotFound, got %v", err)
	}
	if err := kv.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}

	if err := kv.Set(ctx, "../escape", []byte(`x`)); err == nil {
		t.Error("expected invalid key to be rejected")
	}
}

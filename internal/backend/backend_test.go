package backend_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ltask/internal/backend"
	"ltask/internal/backend/filekv"
	"ltask/internal/backend/sqlitekv"
	"ltask/internal/config"
)

func TestFileKV(t *testing.T) {
	kv, err := filekv.New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer kv.Close()
	exerciseKV(t, kv)
}

func TestFileKV_WritesOneFilePerKey(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "ltask")
	kv, err := filekv.New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := kv.Set(context.Background(), "tasks", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected [], got %s", data)
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp.") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}

func TestFileKV_RequiresDir(t *testing.T) {
	if _, err := filekv.New(""); err == nil {
		t.Error("expected error for empty dir")
	}
}

func TestSQLiteKV(t *testing.T) {
	kv, err := sqlitekv.Open(context.Background(), filepath.Join(t.TempDir(), sqlitekv.FileName))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()
	exerciseKV(t, kv)
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), sqlitekv.FileName)

	kv, err := sqlitekv.Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Set(ctx, "tasks", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	kv, err = sqlitekv.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()
	got, err := kv.Get(ctx, "tasks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":1}]` {
		t.Errorf("unexpected value after reopen: %s", got)
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, name := range []string{"", backend.File} {
		kv, err := backend.Open(ctx, &config.Config{Dir: dir, Backend: name})
		if err != nil {
			t.Fatalf("open %q: %v", name, err)
		}
		if _, ok := kv.(*filekv.Store); !ok {
			t.Errorf("backend %q: expected *filekv.Store, got %T", name, kv)
		}
		kv.Close()
	}

	kv, err := backend.Open(ctx, &config.Config{Dir: dir, Backend: backend.SQLite})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer kv.Close()
	if _, ok := kv.(*sqlitekv.Store); !ok {
		t.Errorf("expected *sqlitekv.Store, got %T", kv)
	}
	if _, err := os.Stat(filepath.Join(dir, sqlitekv.FileName)); err != nil {
		t.Errorf("expected database file: %v", err)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := backend.Open(context.Background(), &config.Config{Dir: t.TempDir(), Backend: "redis"})
	if !errors.Is(err, backend.ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
	if err.Error() != "unknown backend: redis" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestLocation(t *testing.T) {
	cfg := &config.Config{Dir: "/data/ltask", Backend: backend.File}
	if got := backend.Location(cfg, "tasks"); got != filepath.Join("/data/ltask", "tasks.json") {
		t.Errorf("file location: got %q", got)
	}

	cfg.Backend = backend.SQLite
	want := filepath.Join("/data/ltask", "ltask.db") + " (key tasks)"
	if got := backend.Location(cfg, "tasks"); got != want {
		t.Errorf("sqlite location: expected %q, got %q", want, got)
	}
}

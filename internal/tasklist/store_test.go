package tasklist_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"ltask/internal/persist"
	"ltask/internal/service"
	"ltask/internal/tasklist"
	"ltask/internal/testutil"
)

func openStore(t *testing.T, kv *testutil.MemoryKV) *tasklist.Store {
	t.Helper()
	at := time.UnixMilli(1_700_000_000_000)
	store, err := tasklist.Open(context.Background(), persist.NewBridge(kv, ""), tasklist.Options{
		IDs:    tasklist.NewIDSource(func() time.Time { return at }),
		Closer: kv,
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func TestStore_OpenEmpty(t *testing.T) {
	kv := testutil.NewMemoryKV()
	store := openStore(t, kv)

	if got := store.Tasks(); len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}
	if kv.Sets != 0 {
		t.Errorf("opening should not write, got %d writes", kv.Sets)
	}
}

func TestStore_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()
	store := openStore(t, kv)

	task, ok, err := store.AddTask(ctx, "buy milk")
	if err != nil || !ok {
		t.Fatalf("add: ok=%v err=%v", ok, err)
	}
	steps := []func() (bool, error){
		func() (bool, error) { return store.ToggleDone(ctx, task.ID) },
		func() (bool, error) { return store.BeginEdit(ctx, task.ID) },
		func() (bool, error) { return store.SaveEdit(ctx, task.ID, "buy oat milk") },
		func() (bool, error) { return store.BeginEdit(ctx, task.ID) },
		func() (bool, error) { return store.CancelEdit(ctx, task.ID) },
	}
	for i, step := range steps {
		ok, err := step()
		if err != nil || !ok {
			t.Fatalf("step %d: ok=%v err=%v", i, ok, err)
		}
		reopened := openStore(t, kv)
		if !reflect.DeepEqual(reopened.Tasks(), store.Tasks()) {
			t.Fatalf("step %d: stored %+v, in memory %+v", i, reopened.Tasks(), store.Tasks())
		}
	}
	if kv.Sets != 1+len(steps) {
		t.Errorf("expected %d writes, got %d", 1+len(steps), kv.Sets)
	}

	if ok, err := store.DeleteTask(ctx, task.ID); err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	raw, _ := kv.Raw(persist.DefaultKey)
	if string(raw) != "[]" {
		t.Errorf("expected empty array stored, got %s", raw)
	}
}

func TestStore_RejectedInputIsNotWritten(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()
	store := openStore(t, kv)

	task, _, _ := store.AddTask(ctx, "a")
	store.BeginEdit(ctx, task.ID)
	writes := kv.Sets

	if _, ok, err := store.AddTask(ctx, "   "); ok || err != nil {
		t.Errorf("blank add: ok=%v err=%v", ok, err)
	}
	if ok, err := store.SaveEdit(ctx, task.ID, ""); ok || err != nil {
		t.Errorf("blank save: ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.AddTask(ctx, "\xff"); ok || err != nil {
		t.Errorf("invalid UTF-8 add: ok=%v err=%v", ok, err)
	}
	if ok, err := store.SaveEdit(ctx, task.ID, "\xff"); ok || err != nil {
		t.Errorf("invalid UTF-8 save: ok=%v err=%v", ok, err)
	}
	if kv.Sets != writes {
		t.Errorf("rejected input wrote storage: %d writes, want %d", kv.Sets, writes)
	}
	got, _ := store.Find(task.ID)
	if !got.Editing || got.Text != "a" {
		t.Errorf("rejected save changed task: %+v", got)
	}
}

func TestStore_StoredTextMatchesMemory(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()
	store := openStore(t, kv)

	store.AddTask(ctx, "caf\u00e9 \U0001F600")
	store.AddTask(ctx, "tab\tand\nnewline")

	if got := openStore(t, kv).Tasks(); !reflect.DeepEqual(got, store.Tasks()) {
		t.Errorf("stored %+v, in memory %+v", got, store.Tasks())
	}
}

func TestStore_MissStillWrites(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()
	store := openStore(t, kv)

	ok, err := store.ToggleDone(ctx, service.ID(12345))
	if ok || err != nil {
		t.Errorf("toggle miss: ok=%v err=%v", ok, err)
	}
	if kv.Sets != 1 {
		t.Errorf("expected one write for a miss, got %d", kv.Sets)
	}
}

func TestStore_SaveFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()
	store := openStore(t, kv)
	kv.SetErr = errors.New("disk full")

	task, ok, err := store.AddTask(ctx, "a")
	if !ok {
		t.Fatal("expected add to be applied")
	}
	if err == nil || !errors.Is(err, kv.SetErr) {
		t.Fatalf("expected wrapped disk error, got %v", err)
	}
	if _, found := store.Find(task.ID); !found {
		t.Error("in-memory list lost the task after a failed save")
	}
}

func TestStore_OpenCorrupt(t *testing.T) {
	kv := testutil.NewMemoryKV()
	kv.Put(persist.DefaultKey, []byte(`{"not":"a list"}`))

	_, err := tasklist.Open(context.Background(), persist.NewBridge(kv, ""), tasklist.Options{})
	if !errors.Is(err, persist.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestStore_OpenKeepsStoredOrder(t *testing.T) {
	kv := testutil.NewMemoryKV()
	kv.Put(persist.DefaultKey, []byte(`[
		{"id": 3, "text": "c", "done": false, "editing": false},
		{"id": 1, "text": "a", "done": true, "editing": true}
	]`))
	store := openStore(t, kv)

	want := []service.Task{
		{ID: 3, Text: "c"},
		{ID: 1, Text: "a", Done: true, Editing: true},
	}
	if got := store.Tasks(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestStore_NewestFirstAcrossReopen(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()

	store := openStore(t, kv)
	store.AddTask(ctx, "a")
	store.AddTask(ctx, "b")

	reopened := openStore(t, kv)
	c, _, _ := reopened.AddTask(ctx, "c")

	got := reopened.Tasks()
	if got[0].ID != c.ID || got[1].Text != "b" || got[2].Text != "a" {
		t.Errorf("unexpected order: %+v", got)
	}
	if c.ID <= got[1].ID {
		t.Errorf("new id %d not above persisted id %d", c.ID, got[1].ID)
	}
}

func TestStore_Close(t *testing.T) {
	closer := &countingCloser{}
	store, err := tasklist.Open(context.Background(), persist.NewBridge(testutil.NewMemoryKV(), ""), tasklist.Options{Closer: closer})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if closer.n != 1 {
		t.Errorf("expected closer called once, got %d", closer.n)
	}
}

type countingCloser struct{ n int }

func (c *countingCloser) Close() error {
	c.n++
	return nil
}

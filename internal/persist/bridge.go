// Package persist keeps a single named slot in a key-value store in sync with
// the task list.
package persist

import (
	"context"
	"errors"
	"fmt"

	"ltask/internal/service"
	"ltask/internal/storage"
)

// DefaultKey is the slot the task list is stored under.
const DefaultKey = "tasks"

// ErrCorrupt marks a stored document that cannot be read back as a task list.
var ErrCorrupt = errors.New("stored tasks are unreadable")

// CorruptError describes why a stored document was rejected.
type CorruptError struct {
	Msg string
}

func (e *CorruptError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return ErrCorrupt.Error()
	}
	return fmt.Sprintf("%s: %s", ErrCorrupt.Error(), e.Msg)
}

func (e *CorruptError) Unwrap() error { return ErrCorrupt }

// Bridge loads and saves the whole task list under one key.
type Bridge struct {
	kv  storage.KV
	key string
}

// NewBridge creates a bridge over kv. An empty key means DefaultKey.
func NewBridge(kv storage.KV, key string) *Bridge {
	if key == "" {
		key = DefaultKey
	}
	return &Bridge{kv: kv, key: key}
}

// Key returns the slot name.
func (b *Bridge) Key() string { return b.key }

// Load reads the slot. A missing slot yields an empty list; unreadable content
// yields an error wrapping ErrCorrupt.
func (b *Bridge) Load(ctx context.Context) ([]service.Task, error) {
	data, err := b.kv.Get(ctx, b.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []service.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", b.key, err)
	}
	tasks, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", b.key, err)
	}
	return tasks, nil
}

// Save writes the full list to the slot, replacing what was there.
func (b *Bridge) Save(ctx context.Context, tasks []service.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return fmt.Errorf("encode %s: %w", b.key, err)
	}
	if err := b.kv.Set(ctx, b.key, data); err != nil {
		return fmt.Errorf("save %s: %w", b.key, err)
	}
	return nil
}

// Reset replaces the slot with an empty list without reading it first.
func (b *Bridge) Reset(ctx context.Context) error {
	return b.Save(ctx, nil)
}

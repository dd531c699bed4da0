// Package backend selects and opens the configured key-value store.
package backend

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"ltask/internal/backend/filekv"
	"ltask/internal/backend/sqlitekv"
	"ltask/internal/config"
	"ltask/internal/storage"
)

const (
	// File stores each key as a JSON file in the config directory.
	File = "file"

	// SQLite stores keys in an embedded database in the config directory.
	SQLite = "sqlite"
)

// ErrUnknownBackend is wrapped when the configured backend name is not known.
var ErrUnknownBackend = errors.New("unknown backend")

// Open opens the key-value store selected by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	switch cfg.Backend {
	case "", File:
		return filekv.New(cfg.Dir)
	case SQLite:
		return sqlitekv.Open(ctx, filepath.Join(cfg.Dir, sqlitekv.FileName))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}

// Location describes where the slot for key lives on disk.
func Location(cfg *config.Config, key string) string {
	switch cfg.Backend {
	case SQLite:
		return filepath.Join(cfg.Dir, sqlitekv.FileName) + " (key " + key + ")"
	default:
		return filepath.Join(cfg.Dir, key+filekv.Ext)
	}
}

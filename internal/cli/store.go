package cli

import (
	"context"
	"io"

	"ltask/internal/backend"
	"ltask/internal/config"
	"ltask/internal/persist"
	"ltask/internal/service"
	"ltask/internal/tasklist"
)

// StoreFactory returns the production ServiceFactory: it opens the configured
// backend and loads the task list from it once. Logs go to logOut.
func StoreFactory(logOut io.Writer) ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		kv, err := backend.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store, err := tasklist.Open(ctx, persist.NewBridge(kv, persist.DefaultKey), tasklist.Options{
			Closer: kv,
			Logger: cfg.Logger(logOut).With("backend", cfg.Backend),
		})
		if err != nil {
			kv.Close()
			return nil, err
		}
		return store, nil
	}
}

package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"ltask/internal/backend"
	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/persist"
	"ltask/internal/service"
)

func init() {
	Register(&ResetCmd{})
}

// ResetCmd implements the reset command. It opens storage itself so it can
// recover a slot the store refuses to load.
type ResetCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *ResetCmd) SetForce(force bool) {
	c.force = force
}

func (c *ResetCmd) Name() string      { return "reset" }
func (c *ResetCmd) Aliases() []string { return nil }
func (c *ResetCmd) Synopsis() string  { return "Replace the stored list with an empty one" }
func (c *ResetCmd) Usage() string     { return "ltask reset [--force]" }
func (c *ResetCmd) NeedsStore() bool  { return false }

func (c *ResetCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *ResetCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	kv, err := backend.Open(ctx, cfg)
	if err != nil {
		if errors.Is(err, backend.ErrUnknownBackend) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return storageError(errOut, err)
	}
	defer kv.Close()

	bridge := persist.NewBridge(kv, persist.DefaultKey)

	// Refuse to discard tasks unless --force
	if !c.force {
		tasks, err := bridge.Load(ctx)
		if err != nil {
			if errors.Is(err, persist.ErrCorrupt) {
				fmt.Fprintln(errOut, "error: stored tasks are unreadable (use --force)")
				return exitcode.StateError
			}
			return storageError(errOut, err)
		}
		if len(tasks) > 0 {
			fmt.Fprintln(errOut, "error: task list not empty (use --force)")
			return exitcode.UserError
		}
	}

	if err := bridge.Reset(ctx); err != nil {
		return storageError(errOut, err)
	}

	printOK(cfg, out)
	return exitcode.Success
}

package commands

import (
	"context"
	"flag"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. It flips the done flag, so running it
// twice on a task reopens it.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle tasks between open and done" }
func (c *DoneCmd) Usage() string     { return "ltask done <ref...>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runEach(ctx, cfg, svc, args, out, errOut, svc.ToggleDone)
}

// runEach resolves every reference up front, then applies op to each task.
func runEach(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer, op func(context.Context, service.ID) (bool, error)) int {
	refs, err := ParseTaskRefs(args)
	if err != nil {
		return refError(errOut, err)
	}

	ids, err := resolveTaskRefs(svc.Tasks(), refs)
	if err != nil {
		return refError(errOut, err)
	}

	for _, id := range ids {
		if _, err := op(ctx, id); err != nil {
			return storageError(errOut, err)
		}
	}

	printOK(cfg, out)
	return exitcode.Success
}

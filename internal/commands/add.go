package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task to the top of the list" }
func (c *AddCmd) Usage() string     { return "ltask add <text...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	text := strings.Join(args, " ")

	_, ok, err := svc.AddTask(ctx, text)
	if err != nil {
		return storageError(errOut, err)
	}
	if !ok {
		return textError(errOut, text)
	}

	printOK(cfg, out)
	return exitcode.Success
}

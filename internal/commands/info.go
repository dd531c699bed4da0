package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/backend"
	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/output"
	"ltask/internal/persist"
	"ltask/internal/service"
)

func init() {
	Register(&InfoCmd{})
}

// InfoCmd implements the info command.
type InfoCmd struct{}

func (c *InfoCmd) Name() string      { return "info" }
func (c *InfoCmd) Aliases() []string { return nil }
func (c *InfoCmd) Synopsis() string  { return "Print settings file, storage location and task counts" }
func (c *InfoCmd) Usage() string     { return "ltask info" }
func (c *InfoCmd) NeedsStore() bool  { return true }

func (c *InfoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InfoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	name := cfg.Backend
	if name == "" {
		name = backend.File
	}
	output.FormatInfo(out, cfg.SettingsPath(), name, backend.Location(cfg, persist.DefaultKey), output.Count(svc.Tasks()))
	return exitcode.Success
}

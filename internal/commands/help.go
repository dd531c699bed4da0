package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ltask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ltask                                    List tasks, newest first
  ltask list [common flags] [--ids]        List tasks (--ids shows raw ids)
  ltask add [common flags] <text...>       Add a task to the top of the list
  ltask done [common flags] <ref...>       Toggle tasks between open and done
  ltask rm [common flags] <ref...>         Delete tasks
  ltask edit [common flags] <ref> [text...]
  ltask save [common flags] <ref> <text...>
  ltask cancel [common flags] <ref>
  ltask info [common flags]
  ltask reset [common flags] [--force]
  ltask ui [common flags]                  Interactive editor
  ltask help
  ltask version

Task references:
  N        position in the listing (1 is the newest task)
  @ID      raw task id (see: ltask list --ids)

Common flags:
  --config <dir>      Override config directory
  --backend <name>    Storage backend: file (default) or sqlite
  --quiet             Suppress informational output
  --debug             Print debug logs to stderr

Environment:
  LTASK_BACKEND, LTASK_DEBUG override <config dir>/config.yaml
`

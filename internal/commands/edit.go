package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
	"ltask/internal/tasklist"
)

func init() {
	Register(&EditCmd{})
	Register(&SaveCmd{})
	Register(&CancelCmd{})
}

// EditCmd implements the edit command. With text it also saves the edit.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Put a task in edit mode, optionally saving new text" }
func (c *EditCmd) Usage() string     { return "ltask edit <ref> [text...]" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	task, code, ok := lookupOne(svc, args, errOut)
	if !ok {
		return code
	}

	// Bad replacement text fails the whole command before anything is written.
	if len(args) > 1 {
		if text := strings.Join(args[1:], " "); !validText(text) {
			return textError(errOut, text)
		}
	}

	if _, err := svc.BeginEdit(ctx, task.ID); err != nil {
		return storageError(errOut, err)
	}

	if len(args) > 1 {
		return saveEdit(ctx, cfg, svc, task.ID, args[1:], out, errOut)
	}

	printOK(cfg, out)
	return exitcode.Success
}

// SaveCmd implements the save command.
type SaveCmd struct{}

func (c *SaveCmd) Name() string      { return "save" }
func (c *SaveCmd) Aliases() []string { return nil }
func (c *SaveCmd) Synopsis() string  { return "Commit new text for a task and leave edit mode" }
func (c *SaveCmd) Usage() string     { return "ltask save <ref> <text...>" }
func (c *SaveCmd) NeedsStore() bool  { return true }

func (c *SaveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SaveCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	task, code, ok := lookupOne(svc, args, errOut)
	if !ok {
		return code
	}
	return saveEdit(ctx, cfg, svc, task.ID, args[1:], out, errOut)
}

// CancelCmd implements the cancel command.
type CancelCmd struct{}

func (c *CancelCmd) Name() string      { return "cancel" }
func (c *CancelCmd) Aliases() []string { return nil }
func (c *CancelCmd) Synopsis() string  { return "Leave edit mode without changing the text" }
func (c *CancelCmd) Usage() string     { return "ltask cancel <ref>" }
func (c *CancelCmd) NeedsStore() bool  { return true }

func (c *CancelCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CancelCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}
	task, code, ok := lookupOne(svc, args, errOut)
	if !ok {
		return code
	}
	if _, err := svc.CancelEdit(ctx, task.ID); err != nil {
		return storageError(errOut, err)
	}
	printOK(cfg, out)
	return exitcode.Success
}

// lookupOne resolves args[0] to a task. On failure it has already reported
// the error and returns the exit code.
func lookupOne(svc service.Service, args []string, errOut io.Writer) (service.Task, int, bool) {
	if len(args) == 0 {
		return service.Task{}, refError(errOut, ErrTaskRefRequired), false
	}
	ref, err := ParseTaskRef(args[0])
	if err != nil {
		return service.Task{}, refError(errOut, err), false
	}
	task, err := resolveTaskRef(svc.Tasks(), ref)
	if err != nil {
		return service.Task{}, refError(errOut, err), false
	}
	return task, exitcode.Success, true
}

// saveEdit commits words as the new text. Blank text is rejected and the task
// stays in edit mode.
func saveEdit(ctx context.Context, cfg *config.Config, svc service.Service, id service.ID, words []string, out, errOut io.Writer) int {
	text := strings.Join(words, " ")
	ok, err := svc.SaveEdit(ctx, id, text)
	if err != nil {
		return storageError(errOut, err)
	}
	if !ok {
		return textError(errOut, text)
	}
	printOK(cfg, out)
	return exitcode.Success
}

func validText(text string) bool {
	_, ok := tasklist.CleanText(text)
	return ok
}

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoweb/internal/app"
	"todoweb/internal/config"
	"todoweb/internal/exitcode"
	"todoweb/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct {
	id string
}

// SetID sets the --id value (for testing).
func (c *ToggleCmd) SetID(id string) {
	c.id = id
}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Toggle a task between open and completed" }
func (c *ToggleCmd) Usage() string      { return "todoweb toggle [--id <id>] <n>" }
func (c *ToggleCmd) NeedsService() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.id, "id", "", "")
}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, root *app.Root, args []string, out, errOut io.Writer) int {
	task, code := resolveTask(ctx, root, args, c.id, errOut)
	if code != exitcode.Success {
		return code
	}

	if _, err := root.List.Toggle(ctx, task.ID, task.Completed); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", root.List.Snapshot().Error)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// resolveTask parses the task reference, mounts the list and finds the task.
func resolveTask(ctx context.Context, root *app.Root, args []string, id string, errOut io.Writer) (service.Task, int) {
	ref, err := ParseTaskRef(args, id)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.Task{}, exitcode.UserError
	}

	view, code := mount(ctx, root, errOut)
	if code != exitcode.Success {
		return service.Task{}, code
	}

	task, err := ref.Resolve(view)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.Task{}, exitcode.UserError
	}
	return task, exitcode.Success
}

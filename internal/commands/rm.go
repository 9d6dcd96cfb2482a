package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoweb/internal/app"
	"todoweb/internal/config"
	"todoweb/internal/exitcode"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	id string
}

// SetID sets the --id value (for testing).
func (c *RmCmd) SetID(id string) {
	c.id = id
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "todoweb rm [--id <id>] <n>" }
func (c *RmCmd) NeedsService() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.id, "id", "", "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, root *app.Root, args []string, out, errOut io.Writer) int {
	task, code := resolveTask(ctx, root, args, c.id, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := root.List.Delete(ctx, task.ID); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", root.List.Snapshot().Error)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoweb/internal/app"
	"todoweb/internal/config"
	"todoweb/internal/exitcode"
	"todoweb/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todoweb` (no args) and `todoweb list`.
type ListCmd struct{}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "todoweb list" }
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, root *app.Root, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	view, code := mount(ctx, root, errOut)
	if code != exitcode.Success {
		return code
	}

	if view.Empty {
		if !cfg.Quiet {
			fmt.Fprintln(out, app.EmptyMessage)
		}
		return exitcode.Success
	}

	output.FormatView(out, view)
	return exitcode.Success
}

// mount loads the list and reports a load failure on errOut.
func mount(ctx context.Context, root *app.Root, errOut io.Writer) (app.View, int) {
	if err := root.Mount(ctx); err != nil {
		view := root.List.Snapshot()
		fmt.Fprintf(errOut, "error: %s\n", view.Error)
		return view, exitcode.BackendError
	}
	return root.List.Snapshot(), exitcode.Success
}

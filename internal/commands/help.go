package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoweb/internal/app"
	"todoweb/internal/config"
	"todoweb/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todoweb help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, root *app.Root, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		name := cmd.Name()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-18s %s\n", name, cmd.Synopsis())
	}
	return exitcode.Success
}

const helpText = `Usage:
  todoweb                                  List all tasks
  todoweb list [common flags]
  todoweb add [common flags] <title...>
  todoweb toggle [common flags] [--id <id>] <n>
  todoweb rm [common flags] [--id <id>] <n>
  todoweb serve [common flags] [--addr <host:port>]
  todoweb help
  todoweb version

Tasks are referenced by their row number in 'todoweb list', or by server id with --id.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TODOWEB_API_URL           Remote task collection (default http://localhost:8000/api/todos)
  TODOWEB_ADDR              Listen address for serve (default :8080)
  TODOWEB_LOG_LEVEL         debug, info, warn or error
  TODOWEB_LOG_FORMAT        text or json
  TODOWEB_REQUEST_TIMEOUT   Per-request timeout, e.g. 10s
  TODOWEB_CORS_ORIGINS      Comma-separated origins allowed to call /api
`

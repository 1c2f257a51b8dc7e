// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/taxiswap/deployctl/internal/deploylog"
	"github.com/taxiswap/deployctl/internal/forge"
	"github.com/taxiswap/deployctl/internal/version"
)

// Dependencies holds all injected dependencies required for command
// execution, so tests can swap the runner, prompter, and clock.
type Dependencies struct {
	WorkDir       string
	Out           io.Writer
	Now           func() time.Time
	Runner        forge.Runner
	Prompter      Prompter
	ArchiveDialer ArchiveDialer
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile string `name:"env-file" help:"Extra .env file loaded into the process environment"`
	Dir     string `short:"C" name:"dir" help:"Run as if started in this directory"`
	Yes     bool   `short:"y" help:"Skip confirmation prompts"`

	Deploy  DeployCmd  `cmd:"" help:"Deploy the messenger contract to a network"`
	Env     EnvCmd     `cmd:"" name:"env" help:"Inspect network env files"`
	Init    InitCmd    `cmd:"" help:"Write a starter env file for a network"`
	Logs    LogsCmd    `cmd:"" help:"Manage deployment log artifacts"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type DeployCmd struct {
	Network string `arg:"" help:"Network identifier (e.g. mainnet)"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// arguments and dispatches to the matching handler. Returns 0 on
// success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, out)
	}

	if cli.Dir != "" {
		dir := cli.Dir
		if abs, absErr := filepath.Abs(dir); absErr == nil {
			dir = abs
		}
		deps.WorkDir = dir
	}
	if deps.WorkDir == "" {
		deps.WorkDir = "."
	}

	// Extra process env, independent of the per-network file.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"env":       runEnvList,
		"env list":  runEnvList,
		"logs":      runLogsList,
		"logs list": runLogsList,
		"logs push": runLogsPush,
		"version":   func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "deploy", handler: runDeploy},
		{prefix: "env check", handler: runEnvCheck},
		{prefix: "init", handler: runInit},
		{prefix: "logs list", handler: runLogsList},
		{prefix: "logs show", handler: runLogsShow},
		{prefix: "logs push", handler: runLogsPush},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// handleParseError provides user-friendly messages for parse failures.
func handleParseError(args []string, err error, out io.Writer) int {
	errStr := err.Error()

	if strings.Contains(errStr, "expected") {
		switch commandName(args) {
		case "deploy":
			fmt.Fprintln(out, "Usage: deployctl deploy <network>")
			return 1
		case "init":
			fmt.Fprintln(out, "Usage: deployctl init <network>")
			return 1
		}
	}

	return exitWithError(out, err)
}

// commandName extracts the first non-flag argument from the command
// line, skipping known flag pairs.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "-C", "--dir", "--env-file":
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

// logDir resolves the log directory for the working directory, honoring
// the project config override.
func logDir(deps Dependencies, configured string) string {
	dir := configured
	if dir == "" {
		dir = deploylog.DefaultDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(deps.WorkDir, dir)
}

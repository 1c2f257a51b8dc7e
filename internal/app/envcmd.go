// Where: internal/app/envcmd.go
// What: Env file inspection commands.
// Why: Let operators see which networks are configured and what is missing.
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/taxiswap/deployctl/internal/config"
	"github.com/taxiswap/deployctl/internal/ui"
)

// EnvCmd groups the env inspection subcommands.
type EnvCmd struct {
	List  EnvListCmd  `cmd:"" default:"1" help:"List configured networks"`
	Check EnvCheckCmd `cmd:"" help:"Check a network's env file against the required keys"`
}

type (
	EnvListCmd  struct{}
	EnvCheckCmd struct {
		Network string `arg:"" help:"Network identifier"`
	}
)

// runEnvList lists the networks that have a .env.<network> file in the
// working directory.
func runEnvList(_ CLI, deps Dependencies, out io.Writer) int {
	networks, err := config.ListEnvFiles(deps.WorkDir)
	if err != nil {
		return exitWithError(out, err)
	}
	if len(networks) == 0 {
		fmt.Fprintln(out, "No network env files found. Run 'deployctl init <network>' to create one.")
		return 0
	}
	for _, network := range networks {
		fmt.Fprintln(out, network)
	}
	return 0
}

// runEnvCheck loads a network's env file and reports the status of every
// required key without deploying. Returns 1 when any key is missing.
func runEnvCheck(cli CLI, deps Dependencies, out io.Writer) int {
	network := strings.TrimSpace(cli.Env.Check.Network)
	envFile, err := config.LoadEnvFile(deps.WorkDir, network)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(out, "Configuration file for %s does not exist.\n", network)
		return 1
	}
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Header(envFile.Path)
	missing := envFile.Missing(config.RequiredKeys...)
	for _, key := range config.RequiredKeys {
		if strings.TrimSpace(envFile.Get(key)) == "" {
			console.Item(key, "MISSING")
			continue
		}
		console.Item(key, "set")
	}
	if len(missing) > 0 {
		fmt.Fprintf(out, "%d required key(s) missing.\n", len(missing))
		return 1
	}
	return 0
}

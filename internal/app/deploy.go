// Where: internal/app/deploy.go
// What: The deploy command.
// Why: Load network config, run forge, and persist the captured output.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/taxiswap/deployctl/internal/config"
	"github.com/taxiswap/deployctl/internal/deploylog"
	"github.com/taxiswap/deployctl/internal/forge"
)

// runDeploy executes the 'deploy' command: it resolves the .env.<network>
// file into an explicit key/value set, validates the required keys, runs
// forge with that environment, and writes the log artifact.
func runDeploy(cli CLI, deps Dependencies, out io.Writer) int {
	network := strings.TrimSpace(cli.Deploy.Network)
	if network == "" {
		fmt.Fprintln(out, "Usage: deployctl deploy <network>")
		return 1
	}

	project, err := config.LoadProjectConfig(deps.WorkDir)
	if err != nil {
		return exitWithError(out, err)
	}

	envFile, err := config.LoadEnvFile(deps.WorkDir, network)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(out, "Configuration file for %s does not exist.\n", network)
		return 1
	}
	if err != nil {
		return exitWithError(out, err)
	}

	if missing := envFile.Missing(config.RequiredKeys...); len(missing) > 0 {
		fmt.Fprintf(out, "Missing required configuration in %s: %s\n",
			envFile.Path, strings.Join(missing, ", "))
		return 1
	}

	if project.NeedsConfirmation(network) && !cli.Yes && deps.Prompter != nil {
		confirmed, err := deps.Prompter.Confirm(fmt.Sprintf("Deploy the messenger contract to %s?", network))
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Deployment cancelled.")
			return 1
		}
	}

	fmt.Fprintf(out, "Starting deployment to %s\n", network)

	opts := forge.ScriptOptions{
		Script:          project.Script,
		Contract:        project.Contract,
		RPCURL:          envFile.Get("RPC_URL"),
		EtherscanAPIKey: envFile.Get("ETHERSCAN_API_KEY"),
		VerifierURL:     envFile.Get("VERIFIER_URL"),
		ExtraArgs:       project.ExtraArgs,
	}

	// The file's pairs go last so they win over inherited values.
	env := append(os.Environ(), envFile.Environ()...)
	result, err := deps.Runner.Run(context.Background(), deps.WorkDir, env, forge.Binary, opts.Args()...)
	if err != nil {
		return exitWithError(out, fmt.Errorf("run %s: %w", forge.Binary, err))
	}

	path, err := deploylog.Write(logDir(deps, project.LogDir), deploylog.Record{
		Network:   network,
		Timestamp: deps.Now(),
		Stdout:    result.Stdout,
		Stderr:    result.Stderr,
	})
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintf(out, "Deployment output and logs written to %s\n", path)

	if result.Failed() {
		fmt.Fprintf(out, "Deployment to %s failed: forge exited with status %d\n", network, result.ExitCode)
		return 1
	}
	return 0
}

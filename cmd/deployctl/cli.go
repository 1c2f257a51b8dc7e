// Where: cmd/deployctl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"
	"time"

	"github.com/taxiswap/deployctl/internal/app"
	"github.com/taxiswap/deployctl/internal/deploylog"
	"github.com/taxiswap/deployctl/internal/forge"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the
// CLI: the working directory, the forge runner, the confirmation
// prompter, and the S3 archive dialer.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkDir:  workDir,
		Out:      os.Stdout,
		Now:      time.Now,
		Runner:   forge.ExecRunner{},
		Prompter: app.HuhPrompter{},
		ArchiveDialer: func(ctx context.Context, endpoint string) (deploylog.ObjectPutter, error) {
			return deploylog.NewS3Client(ctx, endpoint)
		},
	}, nil
}

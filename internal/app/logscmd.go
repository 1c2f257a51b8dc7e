// Where: internal/app/logscmd.go
// What: Deployment log artifact commands.
// Why: List, read, and archive the per-invocation log files.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/taxiswap/deployctl/internal/config"
	"github.com/taxiswap/deployctl/internal/deploylog"
)

// ArchiveDialer builds the S3 client used by 'logs push'. Injected so
// tests can substitute a fake without touching real credentials.
type ArchiveDialer func(ctx context.Context, endpoint string) (deploylog.ObjectPutter, error)

// LogsCmd groups the log artifact subcommands.
type LogsCmd struct {
	List LogsListCmd `cmd:"" default:"withargs" help:"List deployment log artifacts"`
	Show LogsShowCmd `cmd:"" help:"Print a log artifact"`
	Push LogsPushCmd `cmd:"" help:"Upload log artifacts to an S3 bucket"`
}

type (
	LogsListCmd struct {
		Network string `arg:"" optional:"" help:"Only list artifacts for this network"`
	}
	LogsShowCmd struct {
		Target string `arg:"" help:"Artifact file name or network identifier"`
	}
	LogsPushCmd struct {
		Bucket   string `arg:"" optional:"" help:"Destination bucket (default: archive.bucket from deployctl.yaml)"`
		Prefix   string `help:"Object key prefix"`
		Endpoint string `help:"Custom S3 endpoint (e.g. a local MinIO)"`
	}
)

// runLogsList prints the artifact file names, oldest first.
func runLogsList(cli CLI, deps Dependencies, out io.Writer) int {
	project, err := config.LoadProjectConfig(deps.WorkDir)
	if err != nil {
		return exitWithError(out, err)
	}
	names, err := deploylog.List(logDir(deps, project.LogDir), strings.TrimSpace(cli.Logs.List.Network))
	if err != nil {
		return exitWithError(out, err)
	}
	if len(names) == 0 {
		fmt.Fprintln(out, "No deployment logs found.")
		return 0
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return 0
}

// runLogsShow prints one artifact. The target is either an artifact file
// name or a network identifier, in which case the newest artifact for
// that network is shown.
func runLogsShow(cli CLI, deps Dependencies, out io.Writer) int {
	project, err := config.LoadProjectConfig(deps.WorkDir)
	if err != nil {
		return exitWithError(out, err)
	}
	dir := logDir(deps, project.LogDir)

	target := strings.TrimSpace(cli.Logs.Show.Target)
	path := filepath.Join(dir, filepath.Base(target))
	if _, statErr := os.Stat(path); statErr != nil {
		path, err = deploylog.Latest(dir, target)
		if err != nil {
			return exitWithError(out, err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return exitWithError(out, err)
	}
	_, _ = out.Write(content)
	return 0
}

// runLogsPush uploads every artifact in the log directory to S3.
func runLogsPush(cli CLI, deps Dependencies, out io.Writer) int {
	project, err := config.LoadProjectConfig(deps.WorkDir)
	if err != nil {
		return exitWithError(out, err)
	}

	bucket := strings.TrimSpace(cli.Logs.Push.Bucket)
	if bucket == "" {
		bucket = project.Archive.Bucket
	}
	if bucket == "" {
		fmt.Fprintln(out, "No bucket given and no archive.bucket configured in deployctl.yaml.")
		return 1
	}
	prefix := cli.Logs.Push.Prefix
	if prefix == "" {
		prefix = project.Archive.Prefix
	}
	endpoint := cli.Logs.Push.Endpoint
	if endpoint == "" {
		endpoint = project.Archive.Endpoint
	}

	dialer := deps.ArchiveDialer
	if dialer == nil {
		dialer = func(ctx context.Context, endpoint string) (deploylog.ObjectPutter, error) {
			return deploylog.NewS3Client(ctx, endpoint)
		}
	}

	ctx := context.Background()
	client, err := dialer(ctx, endpoint)
	if err != nil {
		return exitWithError(out, err)
	}

	archiver := deploylog.Archiver{Client: client, Bucket: bucket, Prefix: prefix}
	keys, err := archiver.Push(ctx, logDir(deps, project.LogDir))
	if err != nil {
		return exitWithError(out, err)
	}
	if len(keys) == 0 {
		fmt.Fprintln(out, "No deployment logs to push.")
		return 0
	}
	for _, key := range keys {
		fmt.Fprintf(out, "Uploaded s3://%s/%s\n", bucket, key)
	}
	return 0
}

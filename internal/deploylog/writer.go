// Where: internal/deploylog/writer.go
// What: Deployment log artifact writing and lookup.
// Why: Persist one immutable record of captured forge output per run.
package deploylog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultDir is the conventional log directory relative to the repo root.
const DefaultDir = ".deployment_logs"

const (
	filePrefix    = "deployment_log_"
	fileSuffix    = ".txt"
	stampLayout   = "2006-01-02_15-04-05"
	displayLayout = "2006-01-02 15:04:05"
)

// Record is the content of one deployment log artifact.
type Record struct {
	Network   string
	Timestamp time.Time
	Stdout    string
	Stderr    string
}

// FileName returns the artifact name for a network and timestamp.
// Second granularity keeps successive runs in distinct files.
func FileName(network string, ts time.Time) string {
	return filePrefix + network + "_" + ts.Format(stampLayout) + fileSuffix
}

// Write creates the log directory if needed and writes the record to a
// new artifact, returning its path. Artifacts are never rewritten; the
// timestamped name keeps every invocation's output.
func Write(dir string, rec Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(rec.Network, rec.Timestamp))
	var b strings.Builder
	b.WriteString("Deployment Date: " + rec.Timestamp.Format(displayLayout) + "\n")
	b.WriteString("Network: " + rec.Network + "\n")
	b.WriteString("Deployment Output:\n")
	b.WriteString(rec.Stdout)
	if rec.Stderr != "" {
		b.WriteString("\nErrors:\n")
		b.WriteString(rec.Stderr)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write log %s: %w", path, err)
	}
	return path, nil
}

// List returns the artifact file names in dir, sorted ascending, so the
// newest artifact is last. When network is non-empty only that network's
// artifacts are returned. A missing directory yields an empty list.
func List(dir, network string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	prefix := filePrefix
	if network != "" {
		prefix += network + "_"
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Latest returns the path of the newest artifact for a network.
func Latest(dir, network string) (string, error) {
	names, err := List(dir, network)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no deployment logs for %s in %s", network, dir)
	}
	return filepath.Join(dir, names[len(names)-1]), nil
}

// Where: internal/config/envfile.go
// What: Network env file loading.
// Why: Resolve .env.<network> files into an explicit key/value set.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RequiredKeys are the variables a deployment cannot run without.
// They are substituted into the forge invocation verbatim.
var RequiredKeys = []string{"RPC_URL", "ETHERSCAN_API_KEY", "VERIFIER_URL"}

// EnvFile holds the parsed contents of a .env.<network> file.
// Pairs keep file order; duplicate keys are last-write-wins.
type EnvFile struct {
	Network string
	Path    string

	keys   []string
	values map[string]string
}

// EnvFilePath returns the conventional path of the env file for a network.
func EnvFilePath(dir, network string) string {
	return filepath.Join(dir, ".env."+network)
}

// LoadEnvFile reads the env file for the given network from dir.
// A missing file is reported with an error satisfying os.IsNotExist /
// errors.Is(err, fs.ErrNotExist); callers decide how fatal that is.
//
// Each line is trimmed as a whole and split on the first "=": values may
// themselves contain "=". Lines without a separator are skipped.
func LoadEnvFile(dir, network string) (*EnvFile, error) {
	path := EnvFilePath(dir, network)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	env := &EnvFile{
		Network: network,
		Path:    path,
		values:  map[string]string{},
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.Contains(line, "=") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		env.set(parts[0], parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return env, nil
}

func (e *EnvFile) set(key, value string) {
	if _, seen := e.values[key]; !seen {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Get returns the value for key, or the empty string when absent.
func (e *EnvFile) Get(key string) string {
	return e.values[key]
}

// Lookup returns the value for key and whether it was present in the file.
func (e *EnvFile) Lookup(key string) (string, bool) {
	value, ok := e.values[key]
	return value, ok
}

// Keys returns the keys in file order.
func (e *EnvFile) Keys() []string {
	return append([]string(nil), e.keys...)
}

// Environ returns the pairs as KEY=VALUE strings in file order,
// suitable for appending to an exec.Cmd environment.
func (e *EnvFile) Environ() []string {
	environ := make([]string, 0, len(e.keys))
	for _, key := range e.keys {
		environ = append(environ, key+"="+e.values[key])
	}
	return environ
}

// Missing returns the subset of keys that are absent or empty in the file.
func (e *EnvFile) Missing(keys ...string) []string {
	var missing []string
	for _, key := range keys {
		if strings.TrimSpace(e.values[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// ListEnvFiles returns the network identifiers for every .env.<network>
// file in dir, sorted by file name. The bare ".env" file and
// ".env.example" are not deployable targets and are excluded.
func ListEnvFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, ".env.*"))
	if err != nil {
		return nil, err
	}
	var networks []string
	for _, match := range matches {
		network := strings.TrimPrefix(filepath.Base(match), ".env.")
		if network == "" || network == "example" {
			continue
		}
		networks = append(networks, network)
	}
	return networks, nil
}

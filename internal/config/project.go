// Where: internal/config/project.go
// What: Project config load/validate helpers.
// Why: Let a repo override script path, forge flags, and log handling.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// ProjectFileName is the optional per-repo configuration file.
const ProjectFileName = "deployctl.yaml"

// ProjectConfig holds per-repo deployment settings. Every field has a
// default, so an absent deployctl.yaml is not an error.
type ProjectConfig struct {
	Script    string        `yaml:"script,omitempty"`
	Contract  string        `yaml:"contract,omitempty"`
	LogDir    string        `yaml:"log_dir,omitempty"`
	ExtraArgs []string      `yaml:"extra_args,omitempty"`
	Confirm   []string      `yaml:"confirm,omitempty"`
	Archive   ArchiveConfig `yaml:"archive,omitempty"`
}

// ArchiveConfig configures the optional S3 log archive.
type ArchiveConfig struct {
	Bucket   string `yaml:"bucket,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// DefaultProjectConfig returns the settings used when no deployctl.yaml
// is present: the TaxiSwap messenger script with mainnet confirmation.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Script:   "script/deploy.s.sol",
		Contract: "DeployTaxiSwapMessenger",
		LogDir:   ".deployment_logs",
		Confirm:  []string{"mainnet"},
	}
}

// LoadProjectConfig reads and validates deployctl.yaml from dir, filling
// defaults for any field left unset. An absent file yields the defaults.
func LoadProjectConfig(dir string) (ProjectConfig, error) {
	path := filepath.Join(dir, ProjectFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProjectConfig(), nil
		}
		return ProjectConfig{}, err
	}

	if err := validateProjectConfig(content); err != nil {
		return ProjectConfig{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return normalizeProjectConfig(cfg), nil
}

// NeedsConfirmation reports whether deployments to the network should be
// confirmed interactively before running.
func (c ProjectConfig) NeedsConfirmation(network string) bool {
	for _, name := range c.Confirm {
		if strings.EqualFold(strings.TrimSpace(name), network) {
			return true
		}
	}
	return false
}

func normalizeProjectConfig(cfg ProjectConfig) ProjectConfig {
	defaults := DefaultProjectConfig()
	if strings.TrimSpace(cfg.Script) == "" {
		cfg.Script = defaults.Script
	}
	if strings.TrimSpace(cfg.Contract) == "" {
		cfg.Contract = defaults.Contract
	}
	if strings.TrimSpace(cfg.LogDir) == "" {
		cfg.LogDir = defaults.LogDir
	}
	return cfg
}

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// validateProjectConfig checks the raw YAML against the embedded JSON
// schema before decoding, so typos surface as schema errors rather than
// silently ignored fields.
func validateProjectConfig(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(projectSchemaName, strings.NewReader(projectSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(projectSchemaName)
	})
	return compiledSchema, schemaErr
}

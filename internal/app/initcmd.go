// Where: internal/app/initcmd.go
// What: The init command.
// Why: Scaffold a .env.<network> file from the embedded template.
package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/taxiswap/deployctl/assets"
	"github.com/taxiswap/deployctl/internal/config"
)

// InitCmd writes a starter env file for a network.
type InitCmd struct {
	Network string `arg:"" help:"Network identifier"`
}

type envTemplateData struct {
	Network   string
	Generated string
	Keys      []string
}

// runInit renders the embedded env file template for the network and
// writes it next to the project, refusing to overwrite an existing file.
func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	network := strings.TrimSpace(cli.Init.Network)
	if network == "" {
		fmt.Fprintln(out, "Usage: deployctl init <network>")
		return 1
	}

	path := config.EnvFilePath(deps.WorkDir, network)
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "%s already exists, not overwriting.\n", path)
		return 1
	}

	content, err := renderEnvTemplate(envTemplateData{
		Network:   network,
		Generated: deps.Now().Format("2006-01-02"),
		Keys:      config.RequiredKeys,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	// Env files hold deployment secrets once filled in.
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintf(out, "Wrote %s. Fill in the values, then run 'deployctl env check %s'.\n", path, network)
	return 0
}

func renderEnvTemplate(data envTemplateData) ([]byte, error) {
	tmpl, err := template.New("envfile.tmpl").
		Funcs(sprig.FuncMap()).
		ParseFS(assets.TemplatesFS, "templates/envfile.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse env template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render env template: %w", err)
	}
	return buf.Bytes(), nil
}

// Where: assets/templates_embed.go
// What: Embed starter file templates for the CLI.
// Why: Ship the env file scaffold inside the binary.
package assets

import "embed"

//go:embed templates/*.tmpl
var TemplatesFS embed.FS

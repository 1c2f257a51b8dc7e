// Where: internal/config/schema.go
// What: Embedded JSON schema for deployctl.yaml.
// Why: Catch misspelled or mistyped fields before they reach forge.
package config

import _ "embed"

const projectSchemaName = "deployctl.schema.json"

//go:embed deployctl.schema.json
var projectSchema string

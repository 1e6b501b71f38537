// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep naming and layout decisions in one place.
package meta

const (
	// Project Identity
	AppName   = "triggerkit"
	Slug      = "triggerkit"
	EnvPrefix = "TRIGGERKIT"

	// Directory Layout
	HomeDir = ".triggerkit"

	// DefaultCatalogFile is the catalog path used when no --config flag
	// or global config entry is present.
	DefaultCatalogFile = "config/triggers.yaml"

	// DefaultExportFile is the JSON export target used by `triggerkit export`.
	DefaultExportFile = "config/triggers.json"
)

// Where: cli/internal/configfile/export.go
// What: JSON export of the resolved catalog.
// Why: Hand the preserved source tree to tooling that wants JSON.
package configfile

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ExportJSON writes the catalog's preserved source tree as indented JSON.
// The live catalog is never modified; loading the exported file yields a
// catalog with identical query results.
func ExportJSON(raw map[string]any, path string) error {
	payload, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

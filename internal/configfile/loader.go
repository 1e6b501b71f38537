// Where: cli/internal/configfile/loader.go
// What: File boundary for the trigger catalog.
// Why: Keep reading and format parsing out of the catalog engine.
package configfile

import (
	"fmt"
	"os"

	"github.com/poruru/lambda-trigger-kit/internal/catalog"
	"gopkg.in/yaml.v3"
)

// NotFoundError reports a configuration file that does not exist. It is
// raised at this boundary only; the catalog engine never touches the
// filesystem.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

// Load reads a triggers file and builds a catalog from it. JSON input works
// as well since YAML is a superset, which is what makes export round-trips
// loadable.
func Load(path string) (*catalog.Catalog, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	return Parse(payload)
}

// Parse decodes a YAML document and hands the raw tree to the catalog engine.
func Parse(payload []byte) (*catalog.Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return catalog.Load(raw)
}

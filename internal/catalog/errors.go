// Where: cli/internal/catalog/errors.go
// What: Error types for catalog loading and lookups.
// Why: Let callers distinguish load failures from lookup misses with errors.As.
package catalog

import "fmt"

// ConfigMissingError reports a required top-level section that is absent or
// empty in the source tree.
type ConfigMissingError struct {
	Section string
}

func (e *ConfigMissingError) Error() string {
	return fmt.Sprintf("configuration section %q is missing or empty", e.Section)
}

// UnknownFunctionError reports a lookup for a function name that is not in
// the catalog.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("function %q not found in configuration", e.Name)
}

// UnknownEnvironmentError reports a lookup for an environment name that is
// not in the catalog.
type UnknownEnvironmentError struct {
	Name string
}

func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf("environment %q not found in configuration", e.Name)
}

// Where: cli/internal/catalog/validate.go
// What: Advisory structural validation of a loaded Catalog.
// Why: Report violations as text instead of failing the whole load.
package catalog

// ValidationResult carries the outcome of Validate. Violations are
// human-readable descriptions; Valid is false when any are present.
type ValidationResult struct {
	Valid      bool
	Violations []string
}

// Validate checks structural invariants of the catalog: the functions section
// must be present and non-empty. It never fails for content issues (per-type
// trigger fields belong to the provisioning layer) and is idempotent:
// validating an unchanged catalog twice yields identical results.
func (c *Catalog) Validate() ValidationResult {
	var violations []string

	if len(c.functions) == 0 {
		violations = append(violations, "no functions defined in configuration")
	}

	return ValidationResult{Valid: len(violations) == 0, Violations: violations}
}

// Where: cli/internal/app/validate.go
// What: Validate command.
// Why: Surface schema and structural violations without stopping at the first.
package app

import (
	"io"

	"github.com/poruru/lambda-trigger-kit/internal/ui"
)

// runValidate checks the catalog file against the embedded schema, then runs
// the catalog's own structural validation. Schema findings are reported but
// only load failures and structural violations fail the command.
func runValidate(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	cat, path, ok := loadCatalog(cli, deps, out)
	if !ok {
		return 1
	}

	if deps.SchemaCheck != nil {
		if err := deps.SchemaCheck(path); err != nil {
			console.Error("Schema violation:")
			console.ItemPlain(err.Error())
			return 1
		}
	}

	result := cat.Validate()
	if !result.Valid {
		for _, violation := range result.Violations {
			console.Error(violation)
		}
		return 1
	}

	console.Success("Configuration is valid")
	return 0
}

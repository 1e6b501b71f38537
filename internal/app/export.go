// Where: cli/internal/app/export.go
// What: Export command writing the catalog as JSON.
// Why: Feed the resolved tree to tooling that consumes JSON.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/lambda-trigger-kit/internal/meta"
	"github.com/poruru/lambda-trigger-kit/internal/ui"
)

func runExport(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	cat, _, ok := loadCatalog(cli, deps, out)
	if !ok {
		return 1
	}

	output := cli.Export.Output
	if output == "" {
		output = meta.DefaultExportFile
	}

	if deps.Exporter == nil {
		console.Error("exporter not configured")
		return 1
	}
	if err := deps.Exporter(cat.Raw(), output); err != nil {
		console.Error(fmt.Sprintf("Export failed: %v", err))
		return 1
	}

	console.Success(fmt.Sprintf("Configuration exported to %s", output))
	return 0
}

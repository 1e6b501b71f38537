// Where: cli/internal/app/triggers.go
// What: Triggers command printing the enabled-trigger summary.
// Why: Answer "what fires this function" at a glance.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/lambda-trigger-kit/internal/ui"
)

func runTriggers(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	cat, _, ok := loadCatalog(cli, deps, out)
	if !ok {
		return 1
	}

	name, err := resolveFunction(cli.Triggers.Function, deps, cat.FunctionNames())
	if err != nil {
		console.Error(err.Error())
		return 1
	}

	fn, err := cat.Function(name)
	if err != nil {
		console.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}
	enabled, err := cat.EnabledTriggers(name)
	if err != nil {
		console.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}
	rememberFunction(deps, name)

	summary, err := ui.RenderSummary(fn, enabled)
	if err != nil {
		console.Error(fmt.Sprintf("render summary: %v", err))
		return 1
	}
	fmt.Fprintln(out, summary)
	return 0
}

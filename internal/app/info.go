// Where: cli/internal/app/info.go
// What: Info command for a function's configuration.
// Why: Give users a quick view of one function and its trigger switches.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/lambda-trigger-kit/internal/catalog"
	"github.com/poruru/lambda-trigger-kit/internal/ui"
)

func runInfo(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	cat, _, ok := loadCatalog(cli, deps, out)
	if !ok {
		return 1
	}

	name, err := resolveFunction(cli.Info.Function, deps, cat.FunctionNames())
	if err != nil {
		console.Error(err.Error())
		return 1
	}

	fn, err := cat.Function(name)
	if err != nil {
		console.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}
	rememberFunction(deps, name)

	console.Header("⚙️", "Function")
	console.Item("Name", fn.Name)
	console.Item("Runtime", fn.Runtime)
	console.Item("Memory", fmt.Sprintf("%d MB", fn.MemorySize))
	console.Item("Timeout", fmt.Sprintf("%d seconds", fn.Timeout))
	if fn.Description != "" {
		console.Item("Description", fn.Description)
	}

	fmt.Fprintln(out)
	console.Header("🔔", "Available Triggers")
	for _, triggerType := range catalog.TriggerTypes {
		def, ok := fn.Triggers[triggerType]
		status := "❌ DISABLED"
		if ok && def.Enabled {
			status = "✅ ENABLED"
		}
		console.Item(string(triggerType), status)
	}

	return 0
}

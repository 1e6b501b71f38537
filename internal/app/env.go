// Where: cli/internal/app/env.go
// What: Env command showing one environment's settings.
// Why: Expose environment-scoped configuration without opening the file.
package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/poruru/lambda-trigger-kit/internal/ui"
)

func runEnv(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	cat, _, ok := loadCatalog(cli, deps, out)
	if !ok {
		return 1
	}

	settings, err := cat.Environment(cli.Env.Name)
	if err != nil {
		console.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}

	console.Header("🌍", fmt.Sprintf("Environment: %s", cli.Env.Name))
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		console.Item(key, settings[key])
	}
	return 0
}

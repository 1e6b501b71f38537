// Where: cli/internal/app/resolve.go
// What: Catalog path and function name resolution.
// Why: Share flag/env/global-config fallback logic across commands.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/lambda-trigger-kit/internal/catalog"
	"github.com/poruru/lambda-trigger-kit/internal/envutil"
	"github.com/poruru/lambda-trigger-kit/internal/meta"
)

// resolveCatalogPath determines the triggers file path.
// Priority: --config flag, TRIGGERKIT_CONFIG, catalog_path in the global
// config, then the stock default.
func resolveCatalogPath(cli CLI, deps Dependencies) string {
	if cli.Config != "" {
		return cli.Config
	}
	if path := envutil.Get("CONFIG"); path != "" {
		return path
	}
	if deps.LoadGlobal != nil {
		if _, cfg, err := deps.LoadGlobal(); err == nil && cfg.CatalogPath != "" {
			return cfg.CatalogPath
		}
	}
	return meta.DefaultCatalogFile
}

// loadCatalog resolves the catalog path and loads it, reporting failures to
// the user. The bool result is false when loading failed.
func loadCatalog(cli CLI, deps Dependencies, out io.Writer) (*catalog.Catalog, string, bool) {
	path := resolveCatalogPath(cli, deps)
	if deps.Loader == nil {
		fmt.Fprintln(out, "catalog loader not configured")
		return nil, path, false
	}
	cat, err := deps.Loader(path)
	if err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return nil, path, false
	}
	return cat, path, true
}

// resolveFunction picks the function to operate on: the argument when given,
// otherwise the last-used function from the global config, otherwise an
// interactive selection over the catalog's functions.
func resolveFunction(arg string, deps Dependencies, names []string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if deps.LoadGlobal != nil {
		if _, cfg, err := deps.LoadGlobal(); err == nil && cfg.LastFunction != "" {
			return cfg.LastFunction, nil
		}
	}
	if deps.Prompter != nil && len(names) > 0 {
		return deps.Prompter.Select("Select a function", names)
	}
	return "", fmt.Errorf("function name required (no last-used function recorded)")
}

// rememberFunction persists the last-used function, best effort.
func rememberFunction(deps Dependencies, name string) {
	if deps.LoadGlobal == nil || deps.SaveGlobal == nil {
		return
	}
	path, cfg, err := deps.LoadGlobal()
	if err != nil || cfg.LastFunction == name {
		return
	}
	cfg.LastFunction = name
	_ = deps.SaveGlobal(path, cfg)
}

// Where: cli/cmd/triggerkit/main.go
// What: CLI entrypoint.
// Why: Execute triggerkit commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/lambda-trigger-kit/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}

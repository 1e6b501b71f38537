// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/lambda-trigger-kit/internal/catalog"
	"github.com/poruru/lambda-trigger-kit/internal/config"
	"github.com/poruru/lambda-trigger-kit/internal/meta"
	"github.com/poruru/lambda-trigger-kit/internal/provisioner"
	"github.com/poruru/lambda-trigger-kit/internal/version"
	"go.uber.org/zap"
)

// ProvisionRunner applies a resource plan. Satisfied by provisioner.Runner.
type ProvisionRunner interface {
	Apply(ctx context.Context, plan provisioner.Plan) error
}

// Prompter asks the user to pick from a list when a command argument was
// omitted and nothing is remembered. Implemented by HuhPrompter.
type Prompter interface {
	Select(title string, options []string) (string, error)
}

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of the various collaborators.
type Dependencies struct {
	Out            io.Writer
	Prompter       Prompter
	Loader         func(path string) (*catalog.Catalog, error)
	SchemaCheck    func(path string) error
	Exporter       func(raw map[string]any, path string) error
	NewProvisioner func(endpoints provisioner.Endpoints) ProvisionRunner
	NewLogger      func() (*zap.Logger, error)
	NewRequestID   func() string
	Now            func() time.Time
	LoadGlobal     func() (string, config.GlobalConfig, error)
	SaveGlobal     func(path string, cfg config.GlobalConfig) error
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Config  string `short:"c" help:"Path to the triggers file (default: config/triggers.yaml)"`
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Validate  ValidateCmd  `cmd:"" help:"Validate the trigger catalog"`
	Info      InfoCmd      `cmd:"" help:"Show a function's configuration"`
	Triggers  TriggersCmd  `cmd:"" help:"Show a function's enabled triggers"`
	Env       EnvCmd       `cmd:"" name:"env" help:"Show environment settings"`
	Export    ExportCmd    `cmd:"" help:"Export the catalog to JSON"`
	Invoke    InvokeCmd    `cmd:"" help:"Run the ray converter on an event"`
	Provision ProvisionCmd `cmd:"" help:"Create resources referenced by enabled triggers"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

type (
	ValidateCmd struct{}
	VersionCmd  struct{}

	InfoCmd struct {
		Function string `arg:"" optional:"" help:"Function name (default: last used)"`
	}
	TriggersCmd struct {
		Function string `arg:"" optional:"" help:"Function name (default: last used)"`
	}
	EnvCmd struct {
		Name string `arg:"" help:"Environment name"`
	}
	ExportCmd struct {
		Output string `short:"o" help:"Output path (default: config/triggers.json)"`
	}
	InvokeCmd struct {
		File      string `short:"f" help:"Path to a JSON event file"`
		Event     string `help:"Inline JSON event"`
		RequestID string `help:"Correlation token (default: generated)"`
		NoContext bool   `help:"Invoke without a context, using the local sentinel token"`
	}
	ProvisionCmd struct {
		Function         string `arg:"" optional:"" help:"Function name (default: last used)"`
		S3Endpoint       string `name:"s3-endpoint" default:"http://localhost:9000" help:"S3-compatible endpoint"`
		SQSEndpoint      string `name:"sqs-endpoint" default:"http://localhost:9324" help:"SQS-compatible endpoint"`
		DynamoDBEndpoint string `name:"dynamodb-endpoint" default:"http://localhost:8000" help:"DynamoDB-compatible endpoint"`
	}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	if len(args) == 0 {
		return runNoArgs(deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided, or .env when present.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"validate":             runValidate,
		"info":                 runInfo,
		"info <function>":      runInfo,
		"triggers":             runTriggers,
		"triggers <function>":  runTriggers,
		"env <name>":           runEnv,
		"export":               runExport,
		"invoke":               runInvoke,
		"provision":            runProvision,
		"provision <function>": runProvision,
		"version":              func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// runNoArgs prints a short orientation instead of a parse error.
func runNoArgs(deps Dependencies, out io.Writer) int {
	fmt.Fprintf(out, "⚙️  %s %s\n", meta.AppName, version.GetVersion())
	fmt.Fprintf(out, "   catalog: %s\n", resolveCatalogPath(CLI{}, deps))
	fmt.Fprintf(out, "   Run '%s --help' for usage.\n", meta.AppName)
	return 1
}

func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

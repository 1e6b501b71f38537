// Where: cli/internal/app/app_test.go
// What: Tests for CLI command dispatch.
// Why: Pin exit codes and output across the command surface.
package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/poruru/lambda-trigger-kit/internal/config"
	"github.com/poruru/lambda-trigger-kit/internal/configfile"
	"github.com/poruru/lambda-trigger-kit/internal/provisioner"
	"go.uber.org/zap"
)

const testYAML = `
functions:
  ray_converter:
    name: ray-converter
    runtime: python3.12
    memory_size: 128
    timeout: 30
    api_gateway:
      enabled: true
      route: /convert
    sqs:
      enabled: true
      queue_name: ray-queue
environments:
  dev:
    log_level: DEBUG
`

type fakePrompter struct {
	choice  string
	prompts int
}

func (f *fakePrompter) Select(_ string, _ []string) (string, error) {
	f.prompts++
	return f.choice, nil
}

type fakeRunner struct {
	plans []provisioner.Plan
}

func (f *fakeRunner) Apply(_ context.Context, plan provisioner.Plan) error {
	f.plans = append(f.plans, plan)
	return nil
}

func testDeps(t *testing.T, out *bytes.Buffer) (Dependencies, string) {
	t.Helper()
	t.Setenv("TRIGGERKIT_CONFIG_HOME", t.TempDir())

	catalogPath := filepath.Join(t.TempDir(), "triggers.yaml")
	if err := os.WriteFile(catalogPath, []byte(testYAML), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	deps := Dependencies{
		Out:    out,
		Loader: configfile.Load,
		SchemaCheck: func(path string) error {
			payload, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return configfile.ValidateSchema(payload)
		},
		Exporter:     configfile.ExportJSON,
		NewLogger:    func() (*zap.Logger, error) { return zap.NewNop(), nil },
		NewRequestID: func() string { return "test-request-id" },
		Now:          func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		LoadGlobal: func() (string, config.GlobalConfig, error) {
			path, err := config.GlobalConfigPath()
			if err != nil {
				return "", config.GlobalConfig{}, err
			}
			cfg, err := config.LoadGlobalConfig(path)
			if err != nil {
				if os.IsNotExist(err) {
					return path, config.DefaultGlobalConfig(), nil
				}
				return path, config.GlobalConfig{}, err
			}
			return path, cfg, nil
		},
		SaveGlobal: config.SaveGlobalConfig,
	}
	return deps, catalogPath
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	deps, catalogPath := testDeps(t, &out)

	if code := Run([]string{"--config", catalogPath, "validate"}, deps); code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "Configuration is valid") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunValidateMissingFile(t *testing.T) {
	var out bytes.Buffer
	deps, _ := testDeps(t, &out)

	code := Run([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "validate"}, deps)
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if !strings.Contains(out.String(), "configuration file not found") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunInfoUnknownFunction(t *testing.T) {
	var out bytes.Buffer
	deps, catalogPath := testDeps(t, &out)

	code := Run([]string{"--config", catalogPath, "info", "nope"}, deps)
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if !strings.Contains(out.String(), `function "nope" not found`) {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunInfoShowsTriggerStatus(t *testing.T) {
	var out bytes.Buffer
	deps, catalogPath := testDeps(t, &out)

	if code := Run([]string{"--config", catalogPath, "info", "ray_converter"}, deps); code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}
	output := out.String()
	if !strings.Contains(output, "python3.12") {
		t.Fatalf("missing runtime:\n%s", output)
	}
	if !strings.Contains(output, "✅ ENABLED") || !strings.Contains(output, "❌ DISABLED") {
		t.Fatalf("missing trigger status lines:\n%s", output)
	}
}

func TestRunInfoRemembersFunction(t *testing.T) {
	var out bytes.Buffer
	deps, catalogPath := testDeps(t, &out)

	if code := Run([]string{"--config", catalogPath, "info", "ray_converter"}, deps); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}

	// Second call without the argument falls back to the remembered name.
	out.Reset()
	if code := Run([]string{"--config", catalogPath, "triggers"}, deps); code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "Function: ray-converter") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunTriggersPromptsWhenNothingRemembered(t *testing.T) {
	var out bytes.Buffer
	deps, catalogPath := testDeps(t, &out)

	prompter := &fakePrompter{choice: "ray_converter"}
	deps.Prompter = prompter

	if code := Run([]string{"--config", catalogPath, "triggers"}, deps); code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}
	if prompter.prompts != 1 {
		t.Fatalf("expected one prompt, got %d", prompter.prompts)
	}
	if !strings.Contains(out.String(), "Function: ray-converter") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunTriggersSummary(t *testing.T) {
	var out bytes.Buffer
	deps, catalogPath := testDeps(t, &out)

	if code := Run([]string{"--config", catalogPath, "triggers", "ray_converter"}, deps); code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}
	output := out.String()
	if !strings.Contains(output, "API GATEWAY") || !strings.Contains(output, "Queue: ray-queue") {
		t.Fatalf("unexpected summary:\n%s", output)
	}
}

func TestRunEnv(t *testing.T) {
	var out bytes.Buffer
	deps, catalogPath := testDeps(t, &out)

	if code := Run([]string{"--config", catalogPath, "env", "dev"}, deps); code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "DEBUG") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	if code := Run([]string{"--config", catalogPath, "env", "prod"}, deps); code != 1 {
		t.Fatalf("expected 1 for unknown environment")
	}
}

func TestRunExportRoundTrip(t *testing.T) {
	var out bytes.Buffer
	deps, catalogPath := testDeps(t, &out)

	exportPath := filepath.Join(t.TempDir(), "triggers.json")
	code := Run([]string{"--config", catalogPath, "export", "-o", exportPath}, deps)
	if code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}

	reloaded, err := configfile.Load(exportPath)
	if err != nil {
		t.Fatalf("reload exported file: %v", err)
	}
	enabled, err := reloaded.EnabledTriggers("ray_converter")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(enabled) != 2 {
		t.Fatalf("expected 2 enabled triggers after round trip, got %d", len(enabled))
	}
}

func TestRunInvoke(t *testing.T) {
	var out bytes.Buffer
	deps, _ := testDeps(t, &out)

	code := Run([]string{"invoke", "--event", `{"ray":{"x":10}}`}, deps)
	if code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}
	output := out.String()
	if !strings.Contains(output, `"standard":{"x":10}`) {
		t.Fatalf("unexpected body:\n%s", output)
	}
	if !strings.Contains(output, "test-request-id") {
		t.Fatalf("expected generated request id in body:\n%s", output)
	}
}

func TestRunInvokeNoContext(t *testing.T) {
	var out bytes.Buffer
	deps, _ := testDeps(t, &out)

	code := Run([]string{"invoke", "--event", `{"ray":{"a":1}}`, "--no-context"}, deps)
	if code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "local-test") {
		t.Fatalf("expected sentinel token:\n%s", out.String())
	}
}

func TestRunInvokeMalformedEvent(t *testing.T) {
	var out bytes.Buffer
	deps, _ := testDeps(t, &out)

	code := Run([]string{"invoke", "--event", "not json"}, deps)
	if code != 1 {
		t.Fatalf("expected 1, got %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "InvalidInput") {
		t.Fatalf("expected InvalidInput category:\n%s", out.String())
	}
}

func TestRunProvision(t *testing.T) {
	var out bytes.Buffer
	deps, catalogPath := testDeps(t, &out)

	runner := &fakeRunner{}
	deps.NewProvisioner = func(_ provisioner.Endpoints) ProvisionRunner { return runner }

	code := Run([]string{"--config", catalogPath, "provision", "ray_converter"}, deps)
	if code != 0 {
		t.Fatalf("expected 0, got %d, output:\n%s", code, out.String())
	}
	if len(runner.plans) != 1 {
		t.Fatalf("expected one plan, got %d", len(runner.plans))
	}
	if len(runner.plans[0].Queues) != 1 || runner.plans[0].Queues[0].Name != "ray-queue" {
		t.Fatalf("unexpected plan: %+v", runner.plans[0])
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	deps, _ := testDeps(t, &out)

	if code := Run([]string{"version"}, deps); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected version output")
	}
}

func TestRunNoArgs(t *testing.T) {
	var out bytes.Buffer
	deps, _ := testDeps(t, &out)

	if code := Run(nil, deps); code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if !strings.Contains(out.String(), "--help") {
		t.Fatalf("expected help hint:\n%s", out.String())
	}
}

// Where: cli/cmd/triggerkit/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/poruru/lambda-trigger-kit/internal/app"
	"github.com/poruru/lambda-trigger-kit/internal/config"
	"github.com/poruru/lambda-trigger-kit/internal/configfile"
	"github.com/poruru/lambda-trigger-kit/internal/provisioner"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var newLogger = buildLogger

// buildDependencies constructs all runtime dependencies required by the CLI.
// It wires the catalog loader, schema validation, exporter, provisioner, and
// the diagnostic logger used by the transformation pipeline.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:      os.Stdout,
		Prompter: app.HuhPrompter{},
		Loader:   configfile.Load,
		SchemaCheck: func(path string) error {
			payload, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return configfile.ValidateSchema(payload)
		},
		Exporter: configfile.ExportJSON,
		NewProvisioner: func(endpoints provisioner.Endpoints) app.ProvisionRunner {
			return provisioner.New(endpoints)
		},
		NewLogger:    newLogger,
		NewRequestID: func() string { return uuid.New().String() },
		Now:          time.Now,
		LoadGlobal:   loadGlobalConfig,
		SaveGlobal:   config.SaveGlobalConfig,
	}
}

// buildLogger creates the console logger used for local invocations. Records
// go to stderr so command output on stdout stays machine readable.
func buildLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg.Build()
}

// loadGlobalConfig reads the global config, synthesizing defaults when the
// file does not exist yet.
func loadGlobalConfig() (string, config.GlobalConfig, error) {
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
}

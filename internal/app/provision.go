// Where: cli/internal/app/provision.go
// What: Provision command creating trigger-backed resources.
// Why: Materialize the local S3/SQS/DynamoDB resources a function expects.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/poruru/lambda-trigger-kit/internal/provisioner"
	"github.com/poruru/lambda-trigger-kit/internal/ui"
)

func runProvision(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	cat, _, ok := loadCatalog(cli, deps, out)
	if !ok {
		return 1
	}

	name, err := resolveFunction(cli.Provision.Function, deps, cat.FunctionNames())
	if err != nil {
		console.Error(err.Error())
		return 1
	}

	enabled, err := cat.EnabledTriggers(name)
	if err != nil {
		console.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}
	rememberFunction(deps, name)

	if deps.NewProvisioner == nil {
		console.Error("provisioner not configured")
		return 1
	}
	runner := deps.NewProvisioner(provisioner.Endpoints{
		S3:       cli.Provision.S3Endpoint,
		SQS:      cli.Provision.SQSEndpoint,
		DynamoDB: cli.Provision.DynamoDBEndpoint,
	})

	plan := provisioner.BuildPlan(enabled)
	if err := runner.Apply(context.Background(), plan); err != nil {
		console.Error(fmt.Sprintf("Provisioning failed: %v", err))
		return 1
	}
	return 0
}

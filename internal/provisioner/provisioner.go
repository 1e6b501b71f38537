// Where: cli/internal/provisioner/provisioner.go
// What: Provisioner entrypoint for trigger-backed resources.
// Why: Materialize S3/SQS/DynamoDB resources a function's triggers reference.
package provisioner

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Endpoints holds the service endpoints provisioning targets, typically a
// local emulator stack.
type Endpoints struct {
	S3       string
	SQS      string
	DynamoDB string
}

// Runner applies a Plan against the configured endpoints.
type Runner struct {
	Out       io.Writer
	Clients   ClientFactory
	Endpoints Endpoints
}

// New builds a Runner using real AWS SDK clients.
func New(endpoints Endpoints) *Runner {
	return &Runner{
		Out:       os.Stdout,
		Clients:   awsClientFactory{},
		Endpoints: endpoints,
	}
}

// Apply creates the resources in the plan. Creation is idempotent: resources
// that already exist are skipped, and a failure on one resource does not stop
// the others.
func (r *Runner) Apply(ctx context.Context, plan Plan) error {
	if r == nil {
		return fmt.Errorf("provisioner is nil")
	}

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	clients := r.Clients
	if clients == nil {
		return fmt.Errorf("client factory not configured")
	}

	if plan.Empty() {
		fmt.Fprintln(out, "No provisionable resources in enabled triggers.")
		return nil
	}

	if len(plan.Buckets) > 0 {
		client, err := clients.S3(ctx, r.Endpoints.S3)
		if err != nil {
			fmt.Fprintf(out, "skipping S3 provisioning: %v\n", err)
		} else {
			provisionBuckets(ctx, client, plan.Buckets, out)
		}
	}

	if len(plan.Queues) > 0 {
		client, err := clients.SQS(ctx, r.Endpoints.SQS)
		if err != nil {
			fmt.Fprintf(out, "skipping SQS provisioning: %v\n", err)
		} else {
			provisionQueues(ctx, client, plan.Queues, out)
		}
	}

	if len(plan.Tables) > 0 {
		client, err := clients.DynamoDB(ctx, r.Endpoints.DynamoDB)
		if err != nil {
			fmt.Fprintf(out, "skipping DynamoDB provisioning: %v\n", err)
		} else {
			provisionTables(ctx, client, plan.Tables, out)
		}
	}

	return nil
}

func toString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

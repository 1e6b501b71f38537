// Where: cli/internal/provisioner/sqs.go
// What: SQS provisioning helpers.
// Why: Create the queues sqs triggers reference.
package provisioner

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type SQSAPI interface {
	ListQueues(ctx context.Context) ([]string, error)
	CreateQueue(ctx context.Context, name string) error
}

func provisionQueues(ctx context.Context, client SQSAPI, queues []QueueSpec, out io.Writer) {
	if client == nil || len(queues) == 0 {
		return
	}
	if out == nil {
		out = io.Discard
	}

	existing := map[string]struct{}{}
	if names, err := client.ListQueues(ctx); err == nil {
		for _, name := range names {
			existing[name] = struct{}{}
		}
	}

	for _, queue := range queues {
		name := strings.TrimSpace(queue.Name)
		if name == "" {
			continue
		}
		if _, ok := existing[name]; ok {
			fmt.Fprintf(out, "Queue '%s' already exists. Skipping.\n", name)
			continue
		}

		if err := client.CreateQueue(ctx, name); err != nil {
			fmt.Fprintf(out, "❌ Failed to create queue %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "✅ Created SQS Queue: %s\n", name)
	}
}

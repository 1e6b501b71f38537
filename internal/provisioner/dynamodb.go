// Where: cli/internal/provisioner/dynamodb.go
// What: DynamoDB provisioning helpers.
// Why: Create the tables dynamodb triggers reference.
package provisioner

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type DynamoDBAPI interface {
	ListTables(ctx context.Context) ([]string, error)
	CreateTable(ctx context.Context, table TableSpec) error
}

func provisionTables(ctx context.Context, client DynamoDBAPI, tables []TableSpec, out io.Writer) {
	if client == nil || len(tables) == 0 {
		return
	}
	if out == nil {
		out = io.Discard
	}

	existing := map[string]struct{}{}
	if names, err := client.ListTables(ctx); err == nil {
		for _, name := range names {
			existing[name] = struct{}{}
		}
	}

	for _, table := range tables {
		name := strings.TrimSpace(table.Name)
		if name == "" {
			continue
		}
		if _, ok := existing[name]; ok {
			fmt.Fprintf(out, "Table '%s' already exists. Skipping.\n", name)
			continue
		}

		if err := client.CreateTable(ctx, table); err != nil {
			fmt.Fprintf(out, "❌ Failed to create table %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "✅ Created DynamoDB Table: %s\n", name)
	}
}

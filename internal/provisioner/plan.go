// Where: cli/internal/provisioner/plan.go
// What: Derive provisionable resources from enabled triggers.
// Why: Map opaque trigger fields to concrete resource specs in one place.
package provisioner

import "github.com/poruru/lambda-trigger-kit/internal/catalog"

// Plan is the desired state derived from a function's enabled triggers.
type Plan struct {
	Buckets []BucketSpec
	Queues  []QueueSpec
	Tables  []TableSpec
}

// BucketSpec names an S3 bucket to create.
type BucketSpec struct {
	Name string
}

// QueueSpec names an SQS queue to create.
type QueueSpec struct {
	Name string
}

// TableSpec names a DynamoDB table and its hash key.
type TableSpec struct {
	Name    string
	HashKey string
}

// Empty reports whether the plan contains no resources.
func (p Plan) Empty() bool {
	return len(p.Buckets) == 0 && len(p.Queues) == 0 && len(p.Tables) == 0
}

// BuildPlan reads the resource-bearing fields out of enabled triggers.
// Triggers without a resource name are skipped; per-field validation beyond
// presence is not this layer's concern either.
func BuildPlan(triggers []catalog.EnabledTrigger) Plan {
	var plan Plan
	for _, trigger := range triggers {
		def := trigger.Definition
		switch trigger.Type {
		case catalog.TriggerS3:
			if name := toString(fieldValue(def, "bucket_name")); name != "" {
				plan.Buckets = append(plan.Buckets, BucketSpec{Name: name})
			}
		case catalog.TriggerSQS:
			if name := toString(fieldValue(def, "queue_name")); name != "" {
				plan.Queues = append(plan.Queues, QueueSpec{Name: name})
			}
		case catalog.TriggerDynamoDB:
			name := toString(fieldValue(def, "table_name"))
			if name == "" {
				continue
			}
			hashKey := toString(fieldValue(def, "hash_key"))
			if hashKey == "" {
				hashKey = "id"
			}
			plan.Tables = append(plan.Tables, TableSpec{Name: name, HashKey: hashKey})
		}
	}
	return plan
}

func fieldValue(def catalog.TriggerDefinition, name string) any {
	value, _ := def.Field(name)
	return value
}

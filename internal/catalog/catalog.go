// Where: cli/internal/catalog/catalog.go
// What: In-memory model of the trigger catalog.
// Why: Give commands a typed, queryable view of triggers.yaml.
package catalog

// TriggerType identifies an event source category that can invoke a function.
type TriggerType string

const (
	TriggerAPIGateway  TriggerType = "api_gateway"
	TriggerSQS         TriggerType = "sqs"
	TriggerS3          TriggerType = "s3"
	TriggerEventBridge TriggerType = "eventbridge"
	TriggerDynamoDB    TriggerType = "dynamodb"
	TriggerSNS         TriggerType = "sns"
)

// TriggerTypes is the closed set of recognized trigger types, in query
// enumeration order. Query results follow this order regardless of how the
// source tree happened to order its keys.
var TriggerTypes = []TriggerType{
	TriggerAPIGateway,
	TriggerSQS,
	TriggerS3,
	TriggerEventBridge,
	TriggerDynamoDB,
	TriggerSNS,
}

// Catalog is the resolved form of a trigger configuration tree.
// It is immutable after Load; a reload builds a fresh Catalog.
type Catalog struct {
	functions    map[string]FunctionConfig
	environments map[string]EnvironmentSettings
	raw          map[string]any
}

// FunctionConfig describes one function and its trigger definitions.
type FunctionConfig struct {
	Name        string
	Runtime     string
	MemorySize  int
	Timeout     int
	Description string
	Triggers    map[TriggerType]TriggerDefinition
}

// TriggerDefinition is one trigger entry under a function. Fields carries the
// trigger-type-specific settings (route, queue_name, schedule, ...) opaquely;
// interpreting them is the provisioning layer's concern.
type TriggerDefinition struct {
	Enabled     bool
	Description string
	Fields      map[string]any
}

// EnvironmentSettings is the opaque key/value mapping for one environment.
type EnvironmentSettings map[string]any

// EnabledTrigger pairs a trigger type with its definition, used for ordered
// query results.
type EnabledTrigger struct {
	Type       TriggerType
	Definition TriggerDefinition
}

// FunctionNames returns the configured function names in sorted order.
func (c *Catalog) FunctionNames() []string {
	return sortedKeys(c.functions)
}

// EnvironmentNames returns the configured environment names in sorted order.
func (c *Catalog) EnvironmentNames() []string {
	return sortedKeys(c.environments)
}

// Raw returns the preserved source tree, including keys the queries ignore.
// The returned tree is a copy; mutating it does not affect the catalog.
func (c *Catalog) Raw() map[string]any {
	copied, _ := deepCopyValue(c.raw).(map[string]any)
	return copied
}

// Field returns a named entry from the trigger's type-specific fields.
func (d TriggerDefinition) Field(name string) (any, bool) {
	value, ok := d.Fields[name]
	return value, ok
}

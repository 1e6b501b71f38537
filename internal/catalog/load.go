// Where: cli/internal/catalog/load.go
// What: Build a Catalog from a pre-parsed configuration tree.
// Why: Keep file and format concerns out of the query engine.
package catalog

import "sort"

// Function-level keys that are not trigger definitions.
var reservedFunctionKeys = map[string]struct{}{
	"name":        {},
	"runtime":     {},
	"memory_size": {},
	"timeout":     {},
	"description": {},
}

// Load builds a Catalog from an already-parsed tree (maps, lists, scalars).
// The tree must carry a non-empty top-level "functions" mapping; otherwise
// Load fails with ConfigMissingError. Reading and parsing the source file is
// the caller's responsibility.
func Load(raw map[string]any) (*Catalog, error) {
	functions := asMap(raw["functions"])
	if len(functions) == 0 {
		return nil, &ConfigMissingError{Section: "functions"}
	}

	cat := &Catalog{
		functions:    make(map[string]FunctionConfig, len(functions)),
		environments: map[string]EnvironmentSettings{},
	}
	cat.raw, _ = deepCopyValue(raw).(map[string]any)

	for name, value := range functions {
		cat.functions[name] = parseFunction(name, asMap(value))
	}

	for name, value := range asMap(raw["environments"]) {
		settings := asMap(value)
		if settings == nil {
			settings = map[string]any{}
		}
		cat.environments[name] = EnvironmentSettings(settings)
	}

	return cat, nil
}

func parseFunction(key string, entry map[string]any) FunctionConfig {
	fn := FunctionConfig{
		Name:        asStringDefault(entry["name"], key),
		Runtime:     asString(entry["runtime"]),
		MemorySize:  asInt(entry["memory_size"]),
		Timeout:     asInt(entry["timeout"]),
		Description: asString(entry["description"]),
		Triggers:    map[TriggerType]TriggerDefinition{},
	}

	// Only the closed trigger-type set becomes queryable. Unknown keys stay
	// in the preserved raw tree for export and are not an error.
	for _, triggerType := range TriggerTypes {
		value, ok := entry[string(triggerType)]
		if !ok {
			continue
		}
		fn.Triggers[triggerType] = parseTrigger(asMap(value))
	}

	return fn
}

func parseTrigger(entry map[string]any) TriggerDefinition {
	def := TriggerDefinition{
		Enabled:     asBool(entry["enabled"]),
		Description: asString(entry["description"]),
		Fields:      map[string]any{},
	}
	for key, value := range entry {
		if key == "enabled" || key == "description" {
			continue
		}
		def.Fields[key] = deepCopyValue(value)
	}
	return def
}

func asMap(value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}

func asString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

func asStringDefault(value any, fallback string) string {
	if s := asString(value); s != "" {
		return s
	}
	return fallback
}

// asInt accepts the numeric shapes YAML and JSON decoders produce.
func asInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func asBool(value any) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	return false
}

func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(v))
		for key, entry := range v {
			copied[key] = deepCopyValue(entry)
		}
		return copied
	case []any:
		copied := make([]any, len(v))
		for i, entry := range v {
			copied[i] = deepCopyValue(entry)
		}
		return copied
	default:
		return v
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Where: cli/internal/catalog/query_test.go
// What: Tests for catalog lookups.
// Why: Pin lookup failures and the fixed trigger enumeration order.
package catalog

import (
	"errors"
	"testing"
)

func TestFunctionUnknownName(t *testing.T) {
	cat, err := Load(sampleTree())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = cat.Function("missing")
	var unknown *UnknownFunctionError
	if !errors.As(err, &unknown) {
		t.Fatalf("unexpected error: %v", err)
	}
	if unknown.Name != "missing" {
		t.Fatalf("unexpected name in error: %s", unknown.Name)
	}
}

func TestEnabledTriggersFiltersAndOrders(t *testing.T) {
	// Enable triggers in an order unlike the enumeration order to prove the
	// result order does not depend on the source tree.
	tree := map[string]any{
		"functions": map[string]any{
			"fn": map[string]any{
				"sns":         map[string]any{"enabled": true},
				"sqs":         map[string]any{"enabled": true},
				"eventbridge": map[string]any{"enabled": false},
				"api_gateway": map[string]any{"enabled": true, "route": "/fn"},
			},
		},
	}
	cat, err := Load(tree)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	enabled, err := cat.EnabledTriggers("fn")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []TriggerType{TriggerAPIGateway, TriggerSQS, TriggerSNS}
	if len(enabled) != len(want) {
		t.Fatalf("expected %d triggers, got %d", len(want), len(enabled))
	}
	for i, trigger := range enabled {
		if trigger.Type != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], trigger.Type)
		}
	}
}

func TestEnabledTriggersAbsentEqualsDisabled(t *testing.T) {
	cat, err := Load(sampleTree())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	enabled, err := cat.EnabledTriggers("ray_converter")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, trigger := range enabled {
		if trigger.Type == TriggerSQS {
			t.Fatalf("disabled trigger must be excluded")
		}
		if trigger.Type == TriggerEventBridge {
			t.Fatalf("absent trigger must be excluded")
		}
	}
	if len(enabled) != 2 {
		t.Fatalf("expected api_gateway and s3, got %d entries", len(enabled))
	}
}

func TestEnabledTriggersUnknownFunction(t *testing.T) {
	cat, err := Load(sampleTree())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var unknown *UnknownFunctionError
	if _, err := cat.EnabledTriggers("missing"); !errors.As(err, &unknown) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnvironmentLookup(t *testing.T) {
	cat, err := Load(sampleTree())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	settings, err := cat.Environment("dev")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if settings["log_level"] != "DEBUG" {
		t.Fatalf("unexpected log_level: %v", settings["log_level"])
	}

	var unknown *UnknownEnvironmentError
	if _, err := cat.Environment("prod"); !errors.As(err, &unknown) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cat, err := Load(sampleTree())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	result := cat.Validate()
	if !result.Valid {
		t.Fatalf("expected valid catalog, violations: %v", result.Violations)
	}

	// Idempotent: a second run yields the same answer.
	again := cat.Validate()
	if again.Valid != result.Valid || len(again.Violations) != len(result.Violations) {
		t.Fatalf("validate is not idempotent")
	}

	empty := &Catalog{}
	if result := empty.Validate(); result.Valid || len(result.Violations) == 0 {
		t.Fatalf("expected violations for empty catalog")
	}
}

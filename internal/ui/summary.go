// Where: cli/internal/ui/summary.go
// What: Render the human-readable trigger summary.
// Why: Keep presentation templating out of the command handlers.
package ui

import (
	"bytes"
	_ "embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/lambda-trigger-kit/internal/catalog"
)

//go:embed templates/summary.tmpl
var summarySource string

var (
	summaryOnce sync.Once
	summaryTmpl *template.Template
	summaryErr  error
)

// Summary is the view model for the trigger summary template.
type Summary struct {
	Name        string
	Description string
	Triggers    []SummaryTrigger
}

// SummaryTrigger is one enabled trigger row.
type SummaryTrigger struct {
	Type        string
	Description string
	Details     []SummaryDetail
}

// SummaryDetail is one label/value line under a trigger.
type SummaryDetail struct {
	Label string
	Value any
}

// RenderSummary formats a function's enabled triggers the way
// `triggerkit triggers <function>` prints them.
func RenderSummary(fn catalog.FunctionConfig, enabled []catalog.EnabledTrigger) (string, error) {
	tmpl, err := loadSummaryTemplate()
	if err != nil {
		return "", err
	}

	view := Summary{Name: fn.Name, Description: fn.Description}
	for _, trigger := range enabled {
		view.Triggers = append(view.Triggers, SummaryTrigger{
			Type:        string(trigger.Type),
			Description: trigger.Definition.Description,
			Details:     triggerDetails(trigger),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadSummaryTemplate() (*template.Template, error) {
	summaryOnce.Do(func() {
		summaryTmpl, summaryErr = template.New("summary").
			Funcs(sprig.TxtFuncMap()).
			Parse(summarySource)
	})
	return summaryTmpl, summaryErr
}

// triggerDetails picks the per-type fields worth surfacing, mirroring what
// the provisioning layer consumes.
func triggerDetails(trigger catalog.EnabledTrigger) []SummaryDetail {
	def := trigger.Definition
	switch trigger.Type {
	case catalog.TriggerAPIGateway:
		return []SummaryDetail{{Label: "Route", Value: fieldOr(def, "route", "N/A")}}
	case catalog.TriggerSQS:
		return []SummaryDetail{
			{Label: "Queue", Value: fieldOr(def, "queue_name", "N/A")},
			{Label: "Batch Size", Value: fieldOr(def, "batch_size", 1)},
		}
	case catalog.TriggerS3:
		return []SummaryDetail{
			{Label: "Bucket", Value: fieldOr(def, "bucket_name", "N/A")},
			{Label: "Events", Value: fieldOr(def, "events", []any{})},
		}
	case catalog.TriggerEventBridge:
		return []SummaryDetail{{Label: "Schedule", Value: fieldOr(def, "schedule", "N/A")}}
	}
	return nil
}

func fieldOr(def catalog.TriggerDefinition, name string, fallback any) any {
	if value, ok := def.Field(name); ok {
		return value
	}
	return fallback
}

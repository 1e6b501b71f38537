// Where: cli/internal/pipeline/classify.go
// What: Fault taxonomy for the ray converter pipeline.
// Why: Keep failure triage in one function instead of a catch-all handler.
package pipeline

import "errors"

// Category labels a diagnostic record for a failed invocation.
type Category string

const (
	CategoryInvalidInput Category = "InvalidInput"
	CategoryInvalidType  Category = "InvalidType"
	CategoryInternal     Category = "InternalError"
)

var (
	// ErrMalformedEvent marks an event body that cannot be interpreted as
	// structured data.
	ErrMalformedEvent = errors.New("event is not structured data")

	// ErrPayloadShape marks a payload field that is present but not a keyed
	// structure.
	ErrPayloadShape = errors.New("payload is not a keyed structure")
)

// Classify maps a pipeline fault to its diagnostic category and response
// status code, most specific match first. Unrecognized faults become
// CategoryInternal with status 500.
func Classify(err error) (Category, int) {
	switch {
	case errors.Is(err, ErrMalformedEvent):
		return CategoryInvalidInput, 400
	case errors.Is(err, ErrPayloadShape):
		return CategoryInvalidType, 400
	default:
		return CategoryInternal, 500
	}
}

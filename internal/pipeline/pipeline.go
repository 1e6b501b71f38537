// Where: cli/internal/pipeline/pipeline.go
// What: Ray-to-standard event transformation.
// Why: Normalize inbound ray payloads with per-stage diagnostics.
package pipeline

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
)

// PayloadKey is the event field the converter reads the domain payload from.
const PayloadKey = "ray"

// NoContextToken is the correlation token used when no invocation context is
// supplied, matching local test invocations.
const NoContextToken = "local-test"

// Invocation carries the identifying pieces of one invocation context.
// A nil *Invocation means no context was supplied.
type Invocation struct {
	RequestID    string
	FunctionName string
}

// Response is the envelope returned for every invocation, success or failure.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Converter transforms one event per call. It holds no per-invocation state;
// a single Converter may serve many sequential invocations.
type Converter struct {
	log *zap.Logger
	now func() time.Time
}

// Option adjusts Converter construction.
type Option func(*Converter)

// WithClock overrides the processing timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a Converter emitting diagnostics to log. The logger is owned by
// the caller; nil falls back to a no-op sink so diagnostics can never affect
// the transformation outcome.
func New(log *zap.Logger, opts ...Option) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Converter{log: log, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleRaw parses an event body and runs the transformation. A body that is
// not a JSON object fails with CategoryInvalidInput.
func (c *Converter) HandleRaw(body []byte, inv *Invocation) Response {
	var event map[string]any
	if err := json.Unmarshal(body, &event); err != nil {
		return c.fail(fmt.Errorf("%w: %v", ErrMalformedEvent, err), correlationToken(inv))
	}
	return c.Handle(event, inv)
}

// Handle converts one event into the normalized envelope. Faults never
// escape: every outcome is a well-formed Response, and every stage emits one
// diagnostic record.
func (c *Converter) Handle(event map[string]any, inv *Invocation) Response {
	token := correlationToken(inv)

	c.log.Info("event received",
		zap.String("stage", "received"),
		zap.String("request_id", token),
		zap.String("function", functionName(inv)),
		zap.Strings("event_keys", eventKeys(event)),
	)

	payload := map[string]any{}
	raw, present := event[PayloadKey]
	switch {
	case !present:
		c.log.Warn("payload key absent, using empty payload",
			zap.String("stage", "extracted"),
			zap.String("request_id", token),
			zap.String("payload_key", PayloadKey),
		)
	default:
		keyed, ok := raw.(map[string]any)
		if !ok {
			return c.fail(fmt.Errorf("%w: %q is %T", ErrPayloadShape, PayloadKey, raw), token)
		}
		payload = keyed
		c.log.Info("payload extracted",
			zap.String("stage", "extracted"),
			zap.String("request_id", token),
			zap.Int("payload_fields", len(payload)),
		)
	}

	converted := map[string]any{
		"standard":     payload,
		"timestamp":    token,
		"processed_at": c.now().UTC().Format(time.RFC3339),
	}
	c.log.Info("payload converted",
		zap.String("stage", "converted"),
		zap.String("request_id", token),
		zap.Int("payload_fields", len(payload)),
	)

	body, err := json.Marshal(converted)
	if err != nil {
		return c.fail(fmt.Errorf("encode response body: %w", err), token)
	}

	c.log.Info("response ready",
		zap.String("stage", "responded"),
		zap.String("request_id", token),
		zap.Int("status_code", 200),
		zap.Int("body_bytes", len(body)),
	)
	return Response{StatusCode: 200, Body: string(body)}
}

// fail converts a classified fault into a response envelope. The diagnostic
// is emitted before returning; an internal fault additionally records the
// original error's type for forensics.
func (c *Converter) fail(err error, token string) Response {
	category, status := Classify(err)

	fields := []zap.Field{
		zap.String("stage", "failed"),
		zap.String("request_id", token),
		zap.String("category", string(category)),
		zap.Error(err),
	}
	if category == CategoryInternal {
		fields = append(fields, zap.String("cause_type", fmt.Sprintf("%T", err)))
	}
	c.log.Error("event processing failed", fields...)

	body, encodeErr := json.Marshal(map[string]any{
		"error":    err.Error(),
		"category": string(category),
	})
	if encodeErr != nil {
		body = []byte(`{"error":"internal error","category":"InternalError"}`)
	}
	return Response{StatusCode: status, Body: string(body)}
}

func correlationToken(inv *Invocation) string {
	if inv == nil {
		return NoContextToken
	}
	return inv.RequestID
}

func functionName(inv *Invocation) string {
	if inv == nil {
		return ""
	}
	return inv.FunctionName
}

func eventKeys(event map[string]any) []string {
	keys := make([]string, 0, len(event))
	for key := range event {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

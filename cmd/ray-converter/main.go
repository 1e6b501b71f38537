// Where: cli/cmd/ray-converter/main.go
// What: Lambda entrypoint for the ray converter.
// Why: Run the transformation pipeline inside a Lambda runtime.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/poruru/lambda-trigger-kit/internal/pipeline"
	"go.uber.org/zap"
)

var converter *pipeline.Converter

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	converter = pipeline.New(logger)
}

// handle adapts a Lambda invocation to the converter. The runtime context is
// mapped to an Invocation; a context without Lambda metadata yields the local
// sentinel token.
func handle(ctx context.Context, event map[string]any) (pipeline.Response, error) {
	var inv *pipeline.Invocation
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		inv = &pipeline.Invocation{
			RequestID:    lc.AwsRequestID,
			FunctionName: lambdacontext.FunctionName,
		}
	}
	return converter.Handle(event, inv), nil
}

func main() {
	lambda.Start(handle)
}

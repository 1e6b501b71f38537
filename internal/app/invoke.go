// Where: cli/internal/app/invoke.go
// What: Invoke command running the ray converter locally.
// Why: Exercise the transformation pipeline without a Lambda runtime.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/poruru/lambda-trigger-kit/internal/pipeline"
	"github.com/poruru/lambda-trigger-kit/internal/ui"
)

func runInvoke(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	body, err := invokeEventBody(cli.Invoke)
	if err != nil {
		console.Error(err.Error())
		return 1
	}

	var inv *pipeline.Invocation
	if !cli.Invoke.NoContext {
		requestID := cli.Invoke.RequestID
		if requestID == "" && deps.NewRequestID != nil {
			requestID = deps.NewRequestID()
		}
		inv = &pipeline.Invocation{RequestID: requestID, FunctionName: "ray-converter"}
	}

	logger, err := deps.NewLogger()
	if err != nil {
		console.Error(fmt.Sprintf("init logger: %v", err))
		return 1
	}
	defer func() { _ = logger.Sync() }()

	opts := []pipeline.Option{}
	if deps.Now != nil {
		opts = append(opts, pipeline.WithClock(deps.Now))
	}
	conv := pipeline.New(logger, opts...)

	resp := conv.HandleRaw(body, inv)
	console.Item("Status", resp.StatusCode)
	console.Item("Body", resp.Body)
	if resp.StatusCode != 200 {
		return 1
	}
	return 0
}

func invokeEventBody(cmd InvokeCmd) ([]byte, error) {
	switch {
	case cmd.File != "" && cmd.Event != "":
		return nil, fmt.Errorf("use either --file or --event, not both")
	case cmd.File != "":
		payload, err := os.ReadFile(cmd.File)
		if err != nil {
			return nil, fmt.Errorf("read event file: %w", err)
		}
		return payload, nil
	case cmd.Event != "":
		return []byte(cmd.Event), nil
	default:
		return []byte("{}"), nil
	}
}

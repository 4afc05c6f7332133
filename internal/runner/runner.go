package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/pretty"

	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/prompt"
	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/provider"
	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/telemetry"
	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/toolcall"
	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/tools"
)

type Runner struct {
	Invoker   provider.Invoker
	Scenarios []Scenario
	ToolDoc   string
	Out       io.Writer
}

// New wires a runner over the full scenario list with the documentation
// block rendered from the tool registry.
func New(inv provider.Invoker, out io.Writer) *Runner {
	return &Runner{
		Invoker:   inv,
		Scenarios: Scenarios(),
		ToolDoc:   tools.Docs(tools.Registry()),
		Out:       out,
	}
}

// Run iterates the scenario list once, strictly in order. Each iteration is
// independent: build prompt, invoke the model, time the call, parse the
// output, print the block. Failures of either kind are reported and the
// loop proceeds; Run never returns an error.
func (r *Runner) Run(ctx context.Context, model string) {
	runID := uuid.NewString()
	ctx = telemetry.WithRunID(ctx, runID)
	telemetry.Emit("run_start", map[string]any{
		"run_id":    runID,
		"model":     model,
		"scenarios": len(r.Scenarios),
	})

	fmt.Fprintf(r.Out, "Testing model: %s\n", model)
	for _, sc := range r.Scenarios {
		fmt.Fprintf(r.Out, "\n--- %s ---\n", sc.ID)
		p := prompt.Build(r.ToolDoc, sc.Instruction)

		start := time.Now()
		out, invokeErr := r.Invoker.Invoke(ctx, model, p)
		elapsed := time.Since(start)
		if invokeErr != nil {
			// Substitute empty output and fall through to the parse step,
			// which then reports the scenario as failed.
			fmt.Fprintf(r.Out, "Invocation error: %v\n", invokeErr)
			out = ""
		}

		telemetry.Emit("model_invoked", map[string]any{
			"run_id":       runID,
			"scenario_id":  sc.ID,
			"duration_ms":  elapsed.Milliseconds(),
			"output_bytes": len(out),
			"invoke_error": invokeErr != nil,
		})
		telemetry.EmitOutputFeatures(ctx, sc.ID, out)

		call, parseErr := toolcall.Parse(out)
		if parseErr == nil {
			fmt.Fprintf(r.Out, "✅ Tool: %s\n", call.ToolName)
			fmt.Fprintf(r.Out, "Parameters: %s\n", renderParameters(call.Parameters))
		} else {
			fmt.Fprintf(r.Out, "JSON parse failed: %v\n", parseErr)
			fmt.Fprintf(r.Out, "Raw text: %s\n", out)
			fmt.Fprintln(r.Out, "❌ Failed to parse tool call.")
		}
		fmt.Fprintf(r.Out, "Time: %.2fs\n", elapsed.Seconds())

		fields := map[string]any{
			"run_id":      runID,
			"scenario_id": sc.ID,
			"ok":          parseErr == nil,
			"elapsed_ms":  elapsed.Milliseconds(),
		}
		if call != nil {
			fields["tool_name"] = call.ToolName
		}
		telemetry.Emit("scenario_result", fields)
	}
}

// renderParameters compacts the parameters map to one line of JSON.
func renderParameters(params map[string]any) string {
	b, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%v", params)
	}
	return string(pretty.Ugly(b))
}

package telemetry

import (
	"context"

	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/metrics"
)

// EmitOutputFeatures records size and brace features of one scenario's raw
// model output. The raw text itself is only included when AEC_PERSIST_RAW=1,
// so default events never leak model output.
func EmitOutputFeatures(ctx context.Context, scenarioID, output string) {
	if !ObserveEnabled() {
		return
	}
	runID, _ := RunIDFromContext(ctx)
	f := metrics.CountFeatures(output)
	fields := map[string]any{
		"run_id":           runID,
		"scenario_id":      scenarioID,
		"features_version": "1",
		"output": map[string]any{
			"bytes":        f.Bytes,
			"runes":        f.Runes,
			"words":        f.Words,
			"lines":        f.Lines,
			"open_braces":  f.OpenBraces,
			"close_braces": f.CloseBraces,
		},
	}
	if PersistRawEnabled() {
		fields["raw_output"] = output
	}
	Emit("output_features", fields)
}

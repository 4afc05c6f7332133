// Package telemetry provides optional JSONL event emission for evaluation runs.
//
// Emission is off by default so the default flow writes no files; set
// AEC_OBSERVE_JSON=1 to append events to <artifacts dir>/events.jsonl.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// defaultArtifactsDir is used when AEC_ARTIFACTS_DIR is unset.
const defaultArtifactsDir = ".aec"

func artifactsDir() string {
	if dir := os.Getenv("AEC_ARTIFACTS_DIR"); dir != "" {
		return dir
	}
	return defaultArtifactsDir
}

// Emit writes a single JSON line to the events file when observation is
// enabled. It augments fields with RFC3339Nano time and the event name.
// Emission failures are reported on stderr and otherwise ignored; telemetry
// must never affect a run's outcome.
func Emit(name string, fields map[string]any) {
	if !ObserveEnabled() {
		return
	}

	// Shallow copy so callers' maps aren't mutated.
	m := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		m[k] = v
	}
	m["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["event"] = name

	b, err := json.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: marshal: %v\n", err)
		return
	}

	dir := artifactsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: mkdir %s: %v\n", dir, err)
		return
	}

	path := filepath.Join(dir, "events.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: write %s: %v\n", path, err)
		return
	}
}

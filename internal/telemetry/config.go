package telemetry

import (
	"os"
)

var (
	observeEnabled    bool
	persistRawEnabled bool
)

func init() {
	// Read once at process start. Mid-run environment changes have no effect
	// beyond the explicit "1" overrides below.
	observeEnabled = os.Getenv("AEC_OBSERVE_JSON") == "1"
	persistRawEnabled = os.Getenv("AEC_PERSIST_RAW") == "1"
}

// ObserveEnabled reports whether JSONL emission is enabled.
func ObserveEnabled() bool {
	// Preserve the startup-evaluated value, but allow tests to enable
	// mid-run via env override.
	if os.Getenv("AEC_OBSERVE_JSON") == "1" {
		return true
	}
	return observeEnabled
}

// PersistRawEnabled reports whether raw model output may be included in
// events. Off by default: parse-failure forensics only, opt-in.
func PersistRawEnabled() bool {
	if os.Getenv("AEC_PERSIST_RAW") == "1" {
		return true
	}
	return persistRawEnabled
}

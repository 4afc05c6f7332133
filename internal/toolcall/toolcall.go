// Package toolcall parses and validates the tool-call envelope a model emits.
package toolcall

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/extract"
)

// ToolCall is the outer envelope every model response must reduce to.
// Payload-level shapes live in the tools package and are not enforced here.
type ToolCall struct {
	ToolName   string         `json:"tool_name"`
	Parameters map[string]any `json:"parameters"`
}

// ErrNoObject reports that the model output contained no JSON object span.
var ErrNoObject = errors.New("no JSON object in model output")

// Parse extracts the first JSON object span from raw model output and
// validates the envelope: tool_name must be a string, parameters must be an
// object. Extra top-level fields are ignored. A missing parameters field is
// a shape failure, not an implicit empty object; the original coerced it
// silently and that implicitness is exactly what this parser makes explicit.
func Parse(output string) (*ToolCall, error) {
	span, ok := extract.FirstObject(output)
	if !ok {
		return nil, ErrNoObject
	}
	if !gjson.Valid(span) {
		return nil, errors.New("extracted span is not valid JSON")
	}
	root := gjson.Parse(span)
	if !root.IsObject() {
		return nil, errors.New("top-level JSON value is not an object")
	}

	name := root.Get("tool_name")
	switch {
	case !name.Exists():
		return nil, errors.New("missing tool_name")
	case name.Type != gjson.String:
		return nil, errors.New("tool_name is not a string")
	}

	params := root.Get("parameters")
	switch {
	case !params.Exists():
		return nil, errors.New("missing parameters")
	case !params.IsObject():
		return nil, errors.New("parameters is not an object")
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(params.Raw), &m); err != nil {
		return nil, fmt.Errorf("decode parameters: %w", err)
	}
	return &ToolCall{ToolName: name.String(), Parameters: m}, nil
}

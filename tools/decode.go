package tools

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeInput coerces a parsed tool call's parameters into the typed input
// record T, matching fields by json tag. Unknown keys are ignored;
// wrong-typed values fail with mapstructure's field-level errors.
//
// The scenario runner validates only the outer envelope; payload-level
// validation is offered here for callers that want the stricter check.
func DecodeInput[T any](parameters map[string]any) (*T, error) {
	var in T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &in,
		TagName: "json",
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(parameters); err != nil {
		return nil, fmt.Errorf("decode parameters: %w", err)
	}
	return &in, nil
}

package toolcall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/toolcall"
)

func TestParse_AddProtocol(t *testing.T) {
	call, err := toolcall.Parse(`{"tool_name":"add_protocol","parameters":{"protocol":"CAN"}}`)
	require.NoError(t, err)
	assert.Equal(t, "add_protocol", call.ToolName)
	assert.Equal(t, map[string]any{"protocol": "CAN"}, call.Parameters)
}

func TestParse_SurroundingProse(t *testing.T) {
	out := "Here you go:\n```json\n{\"tool_name\":\"validate_configuration\",\"parameters\":{\"config\":{}}}\n```"
	call, err := toolcall.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "validate_configuration", call.ToolName)
}

func TestParse_ExtraTopLevelFieldsIgnored(t *testing.T) {
	call, err := toolcall.Parse(`{"tool_name":"add_protocol","parameters":{"protocol":"CAN"},"reasoning":"because"}`)
	require.NoError(t, err)
	assert.Equal(t, "add_protocol", call.ToolName)
}

func TestParse_EmptyParameters_Succeeds(t *testing.T) {
	// Distinct from "no call": an explicitly empty parameters object is fine.
	call, err := toolcall.Parse(`{"tool_name":"validate_configuration","parameters":{}}`)
	require.NoError(t, err)
	assert.Empty(t, call.Parameters)
}

func TestParse_MissingParameters_Fails(t *testing.T) {
	_, err := toolcall.Parse(`{"tool_name":"add_ecu"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing parameters")
}

func TestParse_MissingToolName_Fails(t *testing.T) {
	_, err := toolcall.Parse(`{"parameters":{}}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing tool_name")
}

func TestParse_ToolNameNotString_Fails(t *testing.T) {
	_, err := toolcall.Parse(`{"tool_name":42,"parameters":{}}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool_name is not a string")
}

func TestParse_ParametersNotObject_Fails(t *testing.T) {
	_, err := toolcall.Parse(`{"tool_name":"add_ecu","parameters":["CAN"]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameters is not an object")
}

func TestParse_ProseWithoutBrace_NoObject(t *testing.T) {
	_, err := toolcall.Parse("I think the answer is CAN.")
	require.ErrorIs(t, err, toolcall.ErrNoObject)
}

func TestParse_EmptyOutput_NoObject(t *testing.T) {
	// An invoker failure substitutes empty output; it must surface as the
	// same "no call" result as brace-free prose.
	_, err := toolcall.Parse("")
	require.ErrorIs(t, err, toolcall.ErrNoObject)
}

func TestParse_WidenedSpanIsInvalidJSON(t *testing.T) {
	// The extractor's heuristic span includes the stray trailing brace;
	// strict validation rejects it here instead.
	_, err := toolcall.Parse(`{"tool_name":"add_ecu","parameters":{}} oops}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestParse_NestedParametersPreserved(t *testing.T) {
	out := `{"tool_name":"add_ecu","parameters":{"id":"ECU-1","cpu":"Cortex-M4","controllers":[{"type":"CAN","count":2}]}}`
	call, err := toolcall.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "add_ecu", call.ToolName)
	assert.Equal(t, "ECU-1", call.Parameters["id"])
	assert.Equal(t, "Cortex-M4", call.Parameters["cpu"])
	controllers, ok := call.Parameters["controllers"].([]any)
	require.True(t, ok, "controllers should decode as a JSON array")
	require.Len(t, controllers, 1)
	assert.Equal(t, map[string]any{"type": "CAN", "count": float64(2)}, controllers[0])
}

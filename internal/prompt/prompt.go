// Package prompt builds the single-turn prompt sent to the model.
package prompt

import "fmt"

// promptTemplate wraps the tool documentation and the user instruction.
// The triple-quote delimiters mark the instruction for the model; they are
// convention, not syntax.
const promptTemplate = `You are an assistant that converts a user instruction into a single tool call.
%s

User instruction:
"""%s"""

Return exactly one JSON object representing the tool call.
`

// Build merges the tool-documentation block and a user instruction into one
// prompt. Pure textual substitution: an instruction that itself contains the
// delimiter sequence is embedded as-is, never escaped or rejected.
func Build(toolDoc, instruction string) string {
	return fmt.Sprintf(promptTemplate, toolDoc, instruction)
}

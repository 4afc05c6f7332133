package tools

import (
	"github.com/invopop/jsonschema"
)

// ToolDefinition describes one tool the model may call: its name, a short
// description, the JSON schema of its parameters, and an example parameters
// value rendered into the documentation block.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Example     any
}

// GenerateSchema derives a JSON schema for T. Nested structs are inlined
// (no $ref) so the schema is self-contained; fields without omitempty are
// marked required.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

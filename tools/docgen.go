package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// docRules closes the documentation block; the envelope shape shown here is
// exactly what the validator accepts.
const docRules = `
Rules:
- You must output ONLY a single JSON object:
  { "tool_name": "tool_name_here", "parameters": { ... } }
- DO NOT output any extra text, explanation, or markdown.
- If uncertain, set a field to null and include its name in "uncertainty".
`

// Docs renders the tool-documentation block that the prompt builder embeds
// verbatim. One numbered entry per definition: parameter list derived from
// the input schema, then a compact example call.
func Docs(defs []ToolDefinition) string {
	var b strings.Builder
	b.WriteString("Available tools (call exactly one):\n")
	for i, def := range defs {
		fmt.Fprintf(&b, "\n%d) %s\n", i+1, def.Name)
		if def.Description != "" {
			fmt.Fprintf(&b, "   %s\n", def.Description)
		}
		b.WriteString("   parameters:\n")
		writeParameters(&b, def.InputSchema)
		if def.Example != nil {
			if example, err := exampleCall(def); err == nil {
				fmt.Fprintf(&b, "   example: %s\n", example)
			}
		}
	}
	b.WriteString(docRules)
	return b.String()
}

// writeParameters lists one line per top-level property, in declaration order.
func writeParameters(b *strings.Builder, s *jsonschema.Schema) {
	if s == nil || s.Properties == nil {
		return
	}
	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name, prop := pair.Key, pair.Value
		line := fmt.Sprintf("     - %s (%s", name, typeLabel(prop))
		if !required[name] {
			line += ", optional"
		}
		line += ")"
		if prop.Description != "" {
			line += "  // " + prop.Description
		}
		b.WriteString(line + "\n")
	}
}

// typeLabel renders a schema's type the way the doc block spells types:
// scalars by name, arrays as "list of X", inlined objects as {k:type, ...}.
func typeLabel(s *jsonschema.Schema) string {
	switch s.Type {
	case "array":
		if s.Items == nil {
			return "list"
		}
		return "list of " + typeLabel(s.Items)
	case "object":
		if s.Properties == nil || s.Properties.Len() == 0 {
			return "object"
		}
		parts := make([]string, 0, s.Properties.Len())
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			parts = append(parts, pair.Key+":"+typeLabel(pair.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case "integer":
		return "int"
	case "number":
		return "float"
	case "":
		// Untyped schema (interface field); the description carries the
		// accepted forms.
		return "any"
	default:
		return s.Type
	}
}

// exampleCall assembles the full envelope for a definition's example
// parameters, compacted to a single line.
func exampleCall(def ToolDefinition) (string, error) {
	params, err := json.Marshal(def.Example)
	if err != nil {
		return "", err
	}
	call, err := sjson.Set(`{}`, "tool_name", def.Name)
	if err != nil {
		return "", err
	}
	call, err = sjson.SetRaw(call, "parameters", string(params))
	if err != nil {
		return "", err
	}
	return string(pretty.Ugly([]byte(call))), nil
}

package extract_test

import (
	"testing"

	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/extract"
)

func TestFirstObject_Table(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{
			name:  "BareObject_Unchanged",
			in:    `{"tool_name":"add_ecu","parameters":{}}`,
			want:  `{"tool_name":"add_ecu","parameters":{}}`,
			found: true,
		},
		{
			name:  "SurroundingProse",
			in:    "Sure! Here is the call:\n{\"a\":1}\nHope that helps.",
			want:  `{"a":1}`,
			found: true,
		},
		{
			name:  "MarkdownFence",
			in:    "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
			found: true,
		},
		{
			name:  "NoBrace",
			in:    "I think the answer is CAN.",
			found: false,
		},
		{
			name:  "Empty",
			in:    "",
			found: false,
		},
		{
			name:  "OpenWithoutClose",
			in:    "{never closed",
			found: false,
		},
		{
			name:  "CloseBeforeOpen",
			in:    "} and then {",
			found: false,
		},
		{
			// Known limitation: the span runs to the last '}', swallowing
			// the second object and the text between.
			name:  "TwoObjects_SpansBoth",
			in:    `{"a":1} and {"b":2}`,
			want:  `{"a":1} and {"b":2}`,
			found: true,
		},
		{
			// Known limitation: a stray trailing '}' widens the span into
			// invalid JSON; the validator rejects it downstream.
			name:  "TrailingStrayBrace",
			in:    `{"a":1} oops}`,
			want:  `{"a":1} oops}`,
			found: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := extract.FirstObject(tc.in)
			if found != tc.found {
				t.Fatalf("found: got %v want %v", found, tc.found)
			}
			if found && got != tc.want {
				t.Fatalf("span: got %q want %q", got, tc.want)
			}
		})
	}
}

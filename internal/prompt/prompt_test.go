package prompt_test

import (
	"strings"
	"testing"

	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/prompt"
)

func TestBuild_ContainsDocAndInstructionVerbatim(t *testing.T) {
	doc := "Available tools (call exactly one):\n\n1) add_ecu\n"
	instruction := "Create an ECU with Cortex-M4 and 2 CAN controllers."

	p := prompt.Build(doc, instruction)

	if !strings.Contains(p, doc) {
		t.Fatalf("prompt missing doc block:\n%s", p)
	}
	if !strings.Contains(p, `"""`+instruction+`"""`) {
		t.Fatalf("prompt missing delimited instruction:\n%s", p)
	}
}

func TestBuild_DelimiterInInstruction_NotEscaped(t *testing.T) {
	instruction := `say """hello""" back`

	p := prompt.Build("doc", instruction)

	// No escaping by contract: the instruction is embedded as-is even when
	// it contains the delimiter sequence.
	if !strings.Contains(p, instruction) {
		t.Fatalf("instruction was altered:\n%s", p)
	}
}

func TestBuild_PercentSignsSurvive(t *testing.T) {
	instruction := "Reserve 50% of flash for ECU-1."

	p := prompt.Build("doc", instruction)

	if !strings.Contains(p, instruction) {
		t.Fatalf("percent sign mangled:\n%s", p)
	}
}

func TestBuild_Pure(t *testing.T) {
	a := prompt.Build("doc", "instruction")
	b := prompt.Build("doc", "instruction")
	if a != b {
		t.Fatal("Build is not deterministic")
	}
}

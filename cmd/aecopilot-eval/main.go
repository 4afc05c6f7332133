// Command aecopilot-eval smoke-tests a locally served model's ability to
// emit structured tool calls for embedded hardware configuration.
//
// Usage:
//
//	aecopilot-eval --model <ollama model name>
//
// The process exits 0 regardless of how many scenarios failed to parse;
// only a missing --model is a usage error.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/provider"
	"github.com/YoussefYasserAbdelkader/Simple-Tool-Calling-AE-Copilot/internal/runner"
)

func main() {
	model := flag.String("model", "", "Ollama model name (required)")
	flag.Parse()
	if *model == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: --model")
		flag.Usage()
		os.Exit(2)
	}

	r := runner.New(provider.OllamaCLI{}, os.Stdout)
	r.Run(context.Background(), *model)
}

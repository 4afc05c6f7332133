// Package provider supplies model invokers for the evaluation runner.
package provider

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the serving CLI used when none is configured.
const DefaultCommand = "ollama"

// Invoker runs one blocking inference call and returns the model's raw text
// output. The narrow seam keeps the runner independent of how the model is
// hosted; timeouts, retries and networked clients belong behind it if they
// are ever added.
type Invoker interface {
	Invoke(ctx context.Context, model, prompt string) (string, error)
}

// OllamaCLI invokes `<command> run <model>` with the prompt on stdin and
// returns trimmed stdout. No timeout is applied: an unresponsive model
// blocks until the process exits or ctx is cancelled.
type OllamaCLI struct {
	// Command overrides the executable, mainly for tests.
	// Empty means DefaultCommand.
	Command string
}

func (o OllamaCLI) Invoke(ctx context.Context, model, prompt string) (string, error) {
	command := o.Command
	if command == "" {
		command = DefaultCommand
	}

	cmd := exec.CommandContext(ctx, command, "run", model)
	cmd.Stdin = strings.NewReader(prompt)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Fold the process's stderr into the error so the runner can print
		// one diagnostic line and substitute empty output.
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s run %s: %w: %s", command, model, err, msg)
		}
		return "", fmt.Errorf("%s run %s: %w", command, model, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

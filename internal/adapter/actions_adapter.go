package adapter

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// ActionsAdapter publishes the run outcome to the CI host.
type ActionsAdapter interface {
	// SetOutput records a step output.
	SetOutput(ctx context.Context, name, value string) error

	// Fail marks the step as failed with message.
	Fail(ctx context.Context, message string) error
}

// GitHubActionsAdapter writes outputs to the GITHUB_OUTPUT file and failures
// as workflow commands. With an empty output path SetOutput is a no-op.
type GitHubActionsAdapter struct {
	outputPath string
	commands   io.Writer
}

// NewGitHubActionsAdapter constructs a GitHubActionsAdapter.
func NewGitHubActionsAdapter(outputPath string, commands io.Writer) *GitHubActionsAdapter {
	return &GitHubActionsAdapter{outputPath: outputPath, commands: commands}
}

// SetOutput implements ActionsAdapter.
func (a *GitHubActionsAdapter) SetOutput(ctx context.Context, name, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.outputPath == "" {
		return nil
	}

	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("output %s: multi-line values are not supported", name)
	}

	// #nosec G304 - output path is provided by the CI runner
	f, err := os.OpenFile(a.outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open step output file: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	if _, err := fmt.Fprintf(f, "%s=%s\n", name, value); err != nil {
		return fmt.Errorf("write step output %s: %w", name, err)
	}

	return nil
}

// Fail implements ActionsAdapter.
func (a *GitHubActionsAdapter) Fail(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.commands == nil {
		return nil
	}

	_, err := fmt.Fprintf(a.commands, "::error::%s\n", escapeCommandData(message))

	return err
}

// escapeCommandData escapes workflow command data as the Actions toolkit does.
func escapeCommandData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

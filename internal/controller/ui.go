// Package controller provides output adapters for displaying lint results.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "connlint.dev/pkg/connlint/internal/model"
)

// Format selects how a lint result is rendered.
type Format string

// Available formats.
const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatTable, FormatMarkdown, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(value)))
	if format == "" {
		return FormatTable, nil
	}

	for _, known := range Formats {
		if format == known {
			return format, nil
		}
	}

	return "", fmt.Errorf("unknown report format %q (want one of %v)", value, Formats)
}

// UI defines how the workflow presents its results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResult(ctx context.Context, result m.Result) error
	DisplayFiles(ctx context.Context, files m.FileSet) error
	DisplayRules(ctx context.Context, rules []m.RuleInfo) error
}

// NewUI returns a TUI when interactive output is requested and stdout is a
// terminal, and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, format Format, interactive bool) UI {
	simple := NewSimpleUI(cmd, format)

	if interactive && IsTTY(cmd.OutOrStdout()) {
		return NewTUI(simple, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return simple
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

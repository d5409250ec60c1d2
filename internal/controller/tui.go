package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "connlint.dev/pkg/connlint/internal/model"
)

// TUI implements UI using Bubble Tea: the lint result is shown in a
// scrollable viewport. Listings are delegated to the wrapped SimpleUI.
type TUI struct {
	*SimpleUI
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(simple *SimpleUI, input io.Reader, output io.Writer) *TUI {
	return &TUI{SimpleUI: simple, input: input, output: output}
}

// DisplayResult runs the interactive viewer until the user quits.
func (t *TUI) DisplayResult(ctx context.Context, result m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	program := tea.NewProgram(
		newDiagnosticsModel(result),
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run diagnostics viewer: %w", err)
	}

	// The alt screen is gone once the program exits; leave a one-line summary behind.
	_, err := fmt.Fprintln(t.output, summaryLine(result))

	return err
}

// diagnosticsModel is the Bubble Tea model for browsing diagnostics.
type diagnosticsModel struct {
	viewport viewport.Model
	ready    bool
	header   string
	content  string
	footer   string
}

func newDiagnosticsModel(result m.Result) diagnosticsModel {
	return diagnosticsModel{
		header:  headerStyle.Render("connlint - connector lint"),
		content: buildContent(result),
		footer:  faintStyle.Render("↑/↓ scroll • q quit"),
	}
}

func (dm diagnosticsModel) Init() tea.Cmd {
	return nil
}

func (dm diagnosticsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return dm, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := msg.Height - lipgloss.Height(dm.header) - lipgloss.Height(dm.footer)
		if height < 1 {
			height = 1
		}

		if !dm.ready {
			dm.viewport = viewport.New(msg.Width, height)
			dm.viewport.SetContent(dm.content)
			dm.ready = true
		} else {
			dm.viewport.Width = msg.Width
			dm.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	dm.viewport, cmd = dm.viewport.Update(msg)

	return dm, cmd
}

func (dm diagnosticsModel) View() string {
	if !dm.ready {
		return "\n  Loading..."
	}

	return dm.header + "\n" + dm.viewport.View() + "\n" + dm.footer
}

func buildContent(result m.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", summaryLine(result))

	for _, entry := range result.Diagnostics.Entries() {
		fmt.Fprintf(&b, "  %s\n", lipgloss.NewStyle().Bold(true).Render(string(entry.Path)))

		for _, message := range entry.Messages {
			fmt.Fprintf(&b, "    • %s\n", message)
		}

		b.WriteString("\n")
	}

	for _, failure := range result.Failures {
		fmt.Fprintf(&b, "%s\n", warnStyle.Render(fmt.Sprintf("warning: rule %s failed: %v", failure.Rule, failure.Err)))
	}

	return b.String()
}

func summaryLine(result m.Result) string {
	if result.Passed() {
		return passStyle.Render(fmt.Sprintf("✓ Lint passed (%d files checked)", result.Files))
	}

	return failStyle.Render(fmt.Sprintf("✗ Lint failed: %d of %d files have errors", result.Diagnostics.Len(), result.Files))
}

package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "connlint.dev/pkg/connlint/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func failingResult() m.Result {
	d := m.NewDiagnostics()
	d.Append("contracts/x/main.sol", "connector events should be in a separate contract: events.sol")
	d.Append("contracts/x/main.sol", "interfaces should be defined in a separate file: interface.sol")
	d.Append("contracts/y/helpers.sol", "helpers contract should inherit Basic contract from common directory")

	return m.Result{Files: 4, Diagnostics: d}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"Markdown", FormatMarkdown, false},
		{" yaml ", FormatYAML, false},
		{"json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimpleUI_DisplayResult_Table(t *testing.T) {
	t.Run("passed", func(t *testing.T) {
		cmd, out := newTestCommand()
		ui := NewSimpleUI(cmd, FormatTable)

		require.NoError(t, ui.DisplayResult(context.Background(), m.Result{Files: 3, Diagnostics: m.NewDiagnostics()}))
		assert.Contains(t, out.String(), "Lint passed (3 files checked)")
		assert.NotContains(t, strings.ToLower(out.String()), "error")
	})

	t.Run("failed", func(t *testing.T) {
		cmd, out := newTestCommand()
		ui := NewSimpleUI(cmd, FormatTable)

		require.NoError(t, ui.DisplayResult(context.Background(), failingResult()))

		output := out.String()
		assert.Contains(t, output, "contracts/x/main.sol")
		assert.Contains(t, output, "connector events should be in a separate contract: events.sol, interfaces should be defined in a separate file: interface.sol")
		assert.Contains(t, output, "contracts/y/helpers.sol")
		assert.Contains(t, output, "Lint failed: 2 of 4 files have errors")
	})

	t.Run("rule failures are reported as warnings", func(t *testing.T) {
		cmd, out := newTestCommand()
		ui := NewSimpleUI(cmd, "")

		result := m.Result{
			Files:       1,
			Diagnostics: m.NewDiagnostics(),
			Failures:    []m.RuleFailure{{Rule: "Helpers", Err: errors.New("boom")}},
		}

		require.NoError(t, ui.DisplayResult(context.Background(), result))
		assert.Contains(t, out.String(), "warning: rule Helpers failed: boom")
		assert.Contains(t, out.String(), "Lint passed")
	})
}

func TestSimpleUI_DisplayResult_Markdown(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd, FormatMarkdown)

	require.NoError(t, ui.DisplayResult(context.Background(), failingResult()))
	assert.Equal(t, RenderMarkdown(failingResult()), out.String())
}

func TestSimpleUI_DisplayResult_YAML(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd, FormatYAML)

	result := failingResult()
	result.Failures = []m.RuleFailure{{Rule: "Events", Err: errors.New("boom")}}

	require.NoError(t, ui.DisplayResult(context.Background(), result))

	var report yamlReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))

	assert.False(t, report.Passed)
	assert.Equal(t, 4, report.Files)
	require.Len(t, report.Diagnostics, 2)
	assert.Equal(t, "contracts/x/main.sol", report.Diagnostics[0].File)
	assert.Len(t, report.Diagnostics[0].Errors, 2)
	assert.Equal(t, []yamlRuleFailure{{Rule: "Events", Error: "boom"}}, report.RuleFailures)
}

func TestSimpleUI_DisplayResult_CancelledContext(t *testing.T) {
	cmd, _ := newTestCommand()
	ui := NewSimpleUI(cmd, FormatTable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ui.DisplayResult(ctx, failingResult()), context.Canceled)
}

func TestSimpleUI_DisplayFiles(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd, FormatTable)

	files := m.NewFileSet(
		m.SourceFile{Path: "contracts/a/main.sol", Content: "line1\nline2\n"},
		m.SourceFile{Path: "contracts/a/events.sol", Content: "event A();"},
	)

	require.NoError(t, ui.DisplayFiles(context.Background(), files))

	output := out.String()
	assert.Contains(t, output, "contracts/a/main.sol")
	assert.Contains(t, output, "contracts/a/events.sol")
	assert.Contains(t, strings.ToLower(output), "total files 2")
}

func TestSimpleUI_DisplayRules(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd, FormatTable)

	require.NoError(t, ui.DisplayRules(context.Background(), []m.RuleInfo{
		{Name: "Events", Description: "events belong in events.sol"},
	}))

	assert.Contains(t, out.String(), "Events")
	assert.Contains(t, out.String(), "events belong in events.sol")
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("a"))
	assert.Equal(t, 1, countLines("a\n"))
	assert.Equal(t, 2, countLines("a\nb"))
}

func TestNewUI_NonTerminalFallsBackToSimple(t *testing.T) {
	cmd, _ := newTestCommand()

	ui := NewUI(cmd, FormatTable, true)
	assert.IsType(t, &SimpleUI{}, ui)
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

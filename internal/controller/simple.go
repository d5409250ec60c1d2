package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "connlint.dev/pkg/connlint/internal/model"
)

// SimpleUI implements UI by writing to the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	format Format
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, format Format) *SimpleUI {
	if format == "" {
		format = FormatTable
	}

	return &SimpleUI{cmd: cmd, format: format}
}

// DisplayResult prints the lint outcome in the configured format.
func (s *SimpleUI) DisplayResult(ctx context.Context, result m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.format {
	case FormatMarkdown:
		return s.printf("%s", RenderMarkdown(result))
	case FormatYAML:
		return s.displayYAML(result)
	default:
		return s.displayTable(result)
	}
}

func (s *SimpleUI) displayTable(result m.Result) error {
	for _, failure := range result.Failures {
		if err := s.printf("%s\n", warnStyle.Render(fmt.Sprintf("warning: rule %s failed: %v", failure.Rule, failure.Err))); err != nil {
			return err
		}
	}

	if !result.Passed() {
		if err := s.printf("\n%s", renderDiagnosticsTable(result)); err != nil {
			return err
		}
	}

	return s.printf("%s\n", summaryLine(result))
}

func renderDiagnosticsTable(result m.Result) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, entry := range result.Diagnostics.Entries() {
		table.Append([]string{string(entry.Path), strings.Join(entry.Messages, messageSeparator)})
	}

	table.Render()

	return tableBuffer.String()
}

// yamlReport is the machine-readable form of a result.
type yamlReport struct {
	Passed       bool              `yaml:"passed"`
	Files        int               `yaml:"files"`
	Diagnostics  []yamlDiagnostic  `yaml:"diagnostics"`
	RuleFailures []yamlRuleFailure `yaml:"rule_failures,omitempty"`
}

type yamlDiagnostic struct {
	File   string   `yaml:"file"`
	Errors []string `yaml:"errors"`
}

type yamlRuleFailure struct {
	Rule  string `yaml:"rule"`
	Error string `yaml:"error"`
}

func (s *SimpleUI) displayYAML(result m.Result) error {
	report := yamlReport{
		Passed:      result.Passed(),
		Files:       result.Files,
		Diagnostics: []yamlDiagnostic{},
	}

	for _, entry := range result.Diagnostics.Entries() {
		report.Diagnostics = append(report.Diagnostics, yamlDiagnostic{File: string(entry.Path), Errors: entry.Messages})
	}

	for _, failure := range result.Failures {
		report.RuleFailures = append(report.RuleFailures, yamlRuleFailure{Rule: failure.Rule, Error: failure.Err.Error()})
	}

	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	return encoder.Close()
}

// DisplayFiles lists the files that would be checked.
func (s *SimpleUI) DisplayFiles(ctx context.Context, files m.FileSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	totalLines := 0

	for _, file := range files.Files() {
		lines := countLines(file.Content)
		totalLines += lines

		table.Append([]string{string(file.Path), fmt.Sprintf("%d", lines)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", files.Len()),
		fmt.Sprintf("%d", totalLines),
	})

	table.Render()

	return s.printf("\n%s", tableBuffer.String())
}

// DisplayRules lists the rules in evaluation order.
func (s *SimpleUI) DisplayRules(ctx context.Context, rules []m.RuleInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, rule := range rules {
		table.Append([]string{rule.Name, rule.Description})
	}

	table.Render()

	return s.printf("%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}

func countLines(content string) int {
	if content == "" {
		return 0
	}

	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}

	return lines
}

package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "connlint.dev/pkg/connlint/internal/model"
)

const messageSeparator = ", "

// RenderMarkdown renders the diagnostics as a markdown `File | Error` table,
// one row per file with its messages joined in append order. Rule failures
// are listed below the table as quotes.
func RenderMarkdown(result m.Result) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Error"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, entry := range result.Diagnostics.Entries() {
		table.Append([]string{string(entry.Path), strings.Join(entry.Messages, messageSeparator)})
	}

	table.Render()

	for _, failure := range result.Failures {
		fmt.Fprintf(&buf, "\n> rule %s failed: %v\n", failure.Rule, failure.Err)
	}

	return buf.String()
}

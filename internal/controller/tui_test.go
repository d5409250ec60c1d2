package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "connlint.dev/pkg/connlint/internal/model"
)

func TestDiagnosticsModel_ViewBeforeResize(t *testing.T) {
	model := newDiagnosticsModel(failingResult())

	assert.Nil(t, model.Init())
	assert.Contains(t, model.View(), "Loading")
}

func TestDiagnosticsModel_WindowSize(t *testing.T) {
	model := newDiagnosticsModel(failingResult())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := updated.View()

	assert.Contains(t, view, "contracts/x/main.sol")
	assert.Contains(t, view, "contracts/y/helpers.sol")
	assert.Contains(t, view, "Lint failed")

	resized, _ := updated.Update(tea.WindowSizeMsg{Width: 60, Height: 3})
	dm, ok := resized.(diagnosticsModel)
	require.True(t, ok)
	assert.Equal(t, 60, dm.viewport.Width)
	assert.GreaterOrEqual(t, dm.viewport.Height, 1)
}

func TestDiagnosticsModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			model := newDiagnosticsModel(failingResult())

			_, cmd := model.Update(key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestBuildContent_Passed(t *testing.T) {
	content := buildContent(m.Result{Files: 2, Diagnostics: m.NewDiagnostics()})

	assert.Contains(t, content, "Lint passed (2 files checked)")
}

package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "connlint.dev/pkg/connlint/internal/model"
)

func TestEventsRule(t *testing.T) {
	tests := []struct {
		name string
		file m.SourceFile
		want []m.Finding
	}{
		{
			name: "allow-listed events file",
			file: m.SourceFile{Path: "x/events.sol", Content: "event Foo();"},
			want: nil,
		},
		{
			name: "allow-listed interface file",
			file: m.SourceFile{Path: "x/interface.sol", Content: "event Foo();"},
			want: nil,
		},
		{
			name: "event outside events file",
			file: m.SourceFile{Path: "x/foo.sol", Content: "event Foo();"},
			want: []m.Finding{{Path: "x/foo.sol", Message: "connector events should be in a separate contract: events.sol"}},
		},
		{
			name: "many events yield one finding",
			file: m.SourceFile{Path: "x/main.sol", Content: "event A();\n  event B();\nevent C();"},
			want: []m.Finding{{Path: "x/main.sol", Message: EventsMessage}},
		},
		{
			name: "no events",
			file: m.SourceFile{Path: "x/main.sol", Content: "contract A {}"},
			want: nil,
		},
		{
			name: "suffix match is exact",
			file: m.SourceFile{Path: "x/myevents.sol", Content: "event Foo();"},
			want: []m.Finding{{Path: "x/myevents.sol", Message: EventsMessage}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, err := NewEventsRule().Evaluate(context.Background(), m.NewFileSet(tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.want, findings)
		})
	}
}

func TestInterfacesRule(t *testing.T) {
	files := m.NewFileSet(
		m.SourceFile{Path: "c/interface.sol", Content: "interface A {}"},
		m.SourceFile{Path: "c/interfaces.sol", Content: "interface B {}"},
		m.SourceFile{Path: "c/events.sol", Content: "interface C {}"},
		m.SourceFile{Path: "c/main.sol", Content: "  interface D {}\ninterface E {}"},
	)

	findings, err := NewInterfacesRule().Evaluate(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, []m.Finding{
		{Path: "c/events.sol", Message: InterfacesMessage},
		{Path: "c/main.sol", Message: InterfacesMessage},
	}, findings)
}

func TestForbiddenConstruct_AllowListIsAbsolute(t *testing.T) {
	rule := NewForbiddenConstructWithMatcher(ConstructConfig{
		Name:            "Always",
		AllowedSuffixes: []string{"/ok.sol"},
		Message:         "matched",
	}, matchAll{})

	files := m.NewFileSet(
		m.SourceFile{Path: "a/ok.sol", Content: "anything"},
		m.SourceFile{Path: "b/ok.sol", Content: ""},
		m.SourceFile{Path: "b/nope.sol", Content: ""},
	)

	findings, err := rule.Evaluate(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, []m.Finding{{Path: "b/nope.sol", Message: "matched"}}, findings)
	assert.Equal(t, "Always", rule.Name())
}

func TestForbiddenConstruct_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := m.NewFileSet(m.SourceFile{Path: "x/foo.sol", Content: "event Foo();"})

	findings, err := NewEventsRule().Evaluate(ctx, files)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, findings)
}

type matchAll struct{}

func (matchAll) Match(string) bool { return true }

package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "connlint.dev/pkg/connlint/internal/domain"
	"connlint.dev/pkg/connlint/internal/domain/rules"
	rulesmocks "connlint.dev/pkg/connlint/internal/domain/rules/mocks"
	m "connlint.dev/pkg/connlint/internal/model"
)

type evaluateFunc func(ctx context.Context, files m.FileSet) ([]m.Finding, error)

func newMockRule(t *testing.T, name string, evaluate evaluateFunc) *rulesmocks.MockRule {
	t.Helper()

	rule := rulesmocks.NewMockRule(t)
	rule.EXPECT().Name().Return(name).Maybe()

	if evaluate != nil {
		rule.EXPECT().Evaluate(mock.Anything, mock.Anything).RunAndReturn(evaluate).Once()
	}

	return rule
}

func findings(list ...m.Finding) evaluateFunc {
	return func(context.Context, m.FileSet) ([]m.Finding, error) {
		return list, nil
	}
}

func connectorFiles() m.FileSet {
	return m.NewFileSet(
		m.SourceFile{
			Path:    "contracts/mainnet/connectors/aave/events.sol",
			Content: "pragma solidity ^0.7.0;\n\ncontract Events {\n    event LogDeposit(address indexed token);\n}\n",
		},
		m.SourceFile{
			Path:    "contracts/mainnet/connectors/aave/helpers.sol",
			Content: "pragma solidity ^0.7.0;\n\ncontract Helpers is DSMath {\n}\n",
		},
		m.SourceFile{
			Path:    "contracts/mainnet/connectors/aave/main.sol",
			Content: "pragma solidity ^0.7.0;\n\ninterface TokenInterface {\n    function approve(address, uint256) external;\n}\n\n" +
				"contract AaveResolver is Helpers {\n    event LogWithdraw(address indexed token);\n}\n",
		},
		m.SourceFile{
			Path:    "contracts/mainnet/connectors/compound/helpers.sol",
			Content: "pragma solidity ^0.7.0;\n\ncontract Helpers is Basic {\n}\n\ncontract CompoundHelpers is Helpers {\n}\n",
		},
	)
}

func TestEngine_Run_MergesInRuleOrder(t *testing.T) {
	// Arrange
	first := newMockRule(t, "first", findings(
		m.Finding{Path: "a.sol", Message: "A1"},
		m.Finding{Path: "b.sol", Message: "A2"},
	))
	second := newMockRule(t, "second", findings(
		m.Finding{Path: "b.sol", Message: "B1"},
		m.Finding{Path: "a.sol", Message: "B2"},
	))

	engine := domain.NewEngine([]rules.Rule{first, second}, 1)

	// Act
	result := engine.Run(context.Background(), m.NewFileSet())

	// Assert
	assert.False(t, result.Passed())
	assert.Empty(t, result.Failures)
	assert.Equal(t, []m.Path{"a.sol", "b.sol"}, result.Diagnostics.Paths())
	assert.Equal(t, []string{"A1", "B2"}, result.Diagnostics.Messages("a.sol"))
	assert.Equal(t, []string{"A2", "B1"}, result.Diagnostics.Messages("b.sol"))
}

func TestEngine_Run_EvaluatesEveryRuleWithSameFiles(t *testing.T) {
	files := connectorFiles()

	var seen []m.FileSet

	record := func(_ context.Context, got m.FileSet) ([]m.Finding, error) {
		seen = append(seen, got)
		return nil, nil
	}

	engine := domain.NewEngine([]rules.Rule{
		newMockRule(t, "one", record),
		newMockRule(t, "two", record),
	}, 1)

	result := engine.Run(context.Background(), files)

	require.Len(t, seen, 2)
	assert.Equal(t, files.Files(), seen[0].Files())
	assert.Equal(t, files.Files(), seen[1].Files())
	assert.True(t, result.Passed())
	assert.Equal(t, files.Len(), result.Files)
}

func TestEngine_Run_IsolatesRuleFailures(t *testing.T) {
	tests := []struct {
		name    string
		threads int
	}{
		{name: "sequential", threads: 1},
		{name: "parallel", threads: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			failing := newMockRule(t, "failing", func(context.Context, m.FileSet) ([]m.Finding, error) {
				return []m.Finding{{Path: "a.sol", Message: "partial"}}, errors.New("regex exploded")
			})
			panicking := newMockRule(t, "panicking", func(context.Context, m.FileSet) ([]m.Finding, error) {
				panic("nil dereference")
			})
			healthy := newMockRule(t, "healthy", findings(m.Finding{Path: "a.sol", Message: "healthy"}))

			engine := domain.NewEngine([]rules.Rule{failing, panicking, healthy}, tt.threads)

			// Act
			result := engine.Run(context.Background(), m.NewFileSet())

			// Assert
			require.Len(t, result.Failures, 2)
			assert.Equal(t, "failing", result.Failures[0].Rule)
			assert.EqualError(t, result.Failures[0].Err, "regex exploded")
			assert.Equal(t, "panicking", result.Failures[1].Rule)
			assert.Contains(t, result.Failures[1].Err.Error(), "nil dereference")
			assert.Equal(t, []string{"partial", "healthy"}, result.Diagnostics.Messages("a.sol"))
		})
	}
}

func TestEngine_Run_FailuresAloneDoNotFailTheRun(t *testing.T) {
	failing := newMockRule(t, "failing", func(context.Context, m.FileSet) ([]m.Finding, error) {
		return nil, errors.New("boom")
	})

	result := domain.NewEngine([]rules.Rule{failing}, 1).Run(context.Background(), m.NewFileSet())

	assert.True(t, result.Passed())
	assert.Len(t, result.Failures, 1)
}

func TestEngine_Run_NoRules(t *testing.T) {
	result := domain.NewEngine(nil, 1).Run(context.Background(), connectorFiles())

	assert.True(t, result.Passed())
	assert.Empty(t, result.Failures)
	assert.Equal(t, 4, result.Files)
}

func TestEngine_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rule := newMockRule(t, "never", nil)

	result := domain.NewEngine([]rules.Rule{rule}, 1).Run(ctx, connectorFiles())

	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, context.Canceled)
	assert.True(t, result.Diagnostics.Empty())
	rule.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything)
}

func TestEngine_Run_DefaultRules(t *testing.T) {
	result := domain.NewEngine(rules.Default(), 1).Run(context.Background(), connectorFiles())

	assert.Equal(t, []m.Entry{
		{
			Path:    "contracts/mainnet/connectors/aave/main.sol",
			Messages: []string{
				"connector events should be in a separate contract: events.sol",
				"interfaces should be defined in a separate file: interface.sol",
			},
		},
		{
			Path:     "contracts/mainnet/connectors/aave/helpers.sol",
			Messages: []string{"helpers contract should inherit Basic contract from common directory"},
		},
	}, result.Diagnostics.Entries())
}

func TestEngine_Run_Deterministic(t *testing.T) {
	files := connectorFiles()

	sequential := domain.NewEngine(rules.Default(), 1)
	parallel := domain.NewEngine(rules.Default(), 4)

	first := sequential.Run(context.Background(), files)
	second := sequential.Run(context.Background(), files)
	concurrent := parallel.Run(context.Background(), files)

	assert.Equal(t, first.Diagnostics.Entries(), second.Diagnostics.Entries())
	assert.Equal(t, first.Diagnostics.Entries(), concurrent.Diagnostics.Entries())
}

func TestEngine_Rules_ReturnsCopy(t *testing.T) {
	engine := domain.NewEngine(rules.Default(), 1)

	ruleSet := engine.Rules()
	ruleSet[0] = nil

	assert.NotNil(t, engine.Rules()[0])
	assert.Len(t, engine.Rules(), 3)
}

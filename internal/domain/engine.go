// Package domain contains the lint workflow and the rule engine.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"connlint.dev/pkg/connlint/internal/domain/rules"
	m "connlint.dev/pkg/connlint/internal/model"
)

// Engine evaluates an ordered set of rules against a file set.
type Engine interface {
	Rules() []rules.Rule
	Run(ctx context.Context, files m.FileSet) m.Result
}

type engine struct {
	rules   []rules.Rule
	threads int
}

// ruleOutcome is the slot filled by a single rule evaluation.
type ruleOutcome struct {
	findings []m.Finding
	err      error
}

// NewEngine constructs an Engine. With threads greater than one the rules are
// evaluated concurrently; results are still merged in rule order.
func NewEngine(ruleSet []rules.Rule, threads int) Engine {
	owned := make([]rules.Rule, len(ruleSet))
	copy(owned, ruleSet)

	return &engine{rules: owned, threads: threads}
}

func (e *engine) Rules() []rules.Rule {
	ruleSet := make([]rules.Rule, len(e.rules))
	copy(ruleSet, e.rules)

	return ruleSet
}

func (e *engine) Run(ctx context.Context, files m.FileSet) m.Result {
	outcomes := make([]ruleOutcome, len(e.rules))

	if e.threads > 1 {
		var group errgroup.Group
		group.SetLimit(e.threads)

		for i, rule := range e.rules {
			group.Go(func() error {
				outcomes[i] = evaluate(ctx, rule, files)
				return nil
			})
		}

		_ = group.Wait()
	} else {
		for i, rule := range e.rules {
			outcomes[i] = evaluate(ctx, rule, files)
		}
	}

	return e.merge(files, outcomes)
}

func (e *engine) merge(files m.FileSet, outcomes []ruleOutcome) m.Result {
	result := m.Result{
		Files:       files.Len(),
		Diagnostics: m.NewDiagnostics(),
	}

	for i, outcome := range outcomes {
		result.Diagnostics.AppendFindings(outcome.findings)

		if outcome.err != nil {
			name := e.rules[i].Name()
			slog.Warn("Rule evaluation failed", "rule", name, "error", outcome.err)
			result.Failures = append(result.Failures, m.RuleFailure{Rule: name, Err: outcome.err})
		}
	}

	return result
}

// evaluate runs a single rule, turning a panic into an error. Findings
// returned together with an error are kept; a panicking rule contributes none.
func evaluate(ctx context.Context, rule rules.Rule, files m.FileSet) (outcome ruleOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = ruleOutcome{err: fmt.Errorf("rule %s panicked: %v", rule.Name(), r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return ruleOutcome{err: err}
	}

	slog.Debug("Evaluating rule", "rule", rule.Name(), "files", files.Len())

	findings, err := rule.Evaluate(ctx, files)

	return ruleOutcome{findings: findings, err: err}
}

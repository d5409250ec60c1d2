// Package rules contains the structural checks applied to connector sources.
package rules

import (
	"context"

	m "connlint.dev/pkg/connlint/internal/model"
)

// Rule is a named, independent check over the whole file set.
// Implementations return their findings instead of writing to shared state,
// and must not mutate the file set.
type Rule interface {
	Name() string
	Description() string
	Evaluate(ctx context.Context, files m.FileSet) ([]m.Finding, error)
}

// Default returns the built-in rules in evaluation order.
func Default() []Rule {
	return []Rule{
		NewEventsRule(),
		NewInterfacesRule(),
		NewHelpersRule(),
	}
}

// Describe returns the name and description of every rule, in order.
func Describe(ruleSet []Rule) []m.RuleInfo {
	infos := make([]m.RuleInfo, 0, len(ruleSet))
	for _, rule := range ruleSet {
		infos = append(infos, m.RuleInfo{Name: rule.Name(), Description: rule.Description()})
	}

	return infos
}

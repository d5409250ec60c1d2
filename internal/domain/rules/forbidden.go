package rules

import (
	"context"
	"strings"

	m "connlint.dev/pkg/connlint/internal/model"
)

// Messages reported by the built-in rules.
const (
	EventsMessage     = "connector events should be in a separate contract: events.sol"
	InterfacesMessage = "interfaces should be defined in a separate file: interface.sol"
	HelpersMessage    = "helpers contract should inherit Basic contract from common directory"
)

// ConstructConfig configures a ForbiddenConstruct rule.
type ConstructConfig struct {
	Name            string
	Description     string
	Keyword         string
	AllowedSuffixes []string
	Message         string
}

// ForbiddenConstruct reports files that declare a top-level construct outside
// of the files whose path ends with one of the allowed suffixes.
type ForbiddenConstruct struct {
	config  ConstructConfig
	matcher ConstructMatcher
}

// NewForbiddenConstruct builds a ForbiddenConstruct rule using a keyword matcher.
func NewForbiddenConstruct(config ConstructConfig) *ForbiddenConstruct {
	return NewForbiddenConstructWithMatcher(config, NewKeywordMatcher(config.Keyword))
}

// NewForbiddenConstructWithMatcher builds a ForbiddenConstruct rule with a custom matcher.
func NewForbiddenConstructWithMatcher(config ConstructConfig, matcher ConstructMatcher) *ForbiddenConstruct {
	return &ForbiddenConstruct{config: config, matcher: matcher}
}

// NewEventsRule flags event declarations outside events.sol and interface.sol.
func NewEventsRule() *ForbiddenConstruct {
	return NewForbiddenConstruct(ConstructConfig{
		Name:            "Events",
		Description:     "events must be declared in events.sol (or interface.sol)",
		Keyword:         "event",
		AllowedSuffixes: []string{"/events.sol", "/interface.sol"},
		Message:         EventsMessage,
	})
}

// NewInterfacesRule flags interface declarations outside interface files.
func NewInterfacesRule() *ForbiddenConstruct {
	return NewForbiddenConstruct(ConstructConfig{
		Name:            "Interfaces",
		Description:     "interfaces must be declared in interface.sol (or interfaces.sol)",
		Keyword:         "interface",
		AllowedSuffixes: []string{"/interfaces.sol", "/interface.sol"},
		Message:         InterfacesMessage,
	})
}

// Name implements Rule.
func (fc *ForbiddenConstruct) Name() string {
	return fc.config.Name
}

// Description implements Rule.
func (fc *ForbiddenConstruct) Description() string {
	return fc.config.Description
}

// Evaluate implements Rule. A file is reported at most once.
func (fc *ForbiddenConstruct) Evaluate(ctx context.Context, files m.FileSet) ([]m.Finding, error) {
	var findings []m.Finding

	for _, file := range files.Files() {
		if err := ctx.Err(); err != nil {
			return findings, err
		}

		if fc.allowed(file.Path) {
			continue
		}

		if fc.matcher.Match(file.Content) {
			findings = append(findings, m.Finding{Path: file.Path, Message: fc.config.Message})
		}
	}

	return findings, nil
}

func (fc *ForbiddenConstruct) allowed(path m.Path) bool {
	for _, suffix := range fc.config.AllowedSuffixes {
		if strings.HasSuffix(string(path), suffix) {
			return true
		}
	}

	return false
}

package rules

import (
	"context"
	"log/slog"
	"strings"

	m "connlint.dev/pkg/connlint/internal/model"
)

const (
	helpersSuffix     = "/helpers.sol"
	basicContractName = "Basic"
)

// HelpersInheritance checks that every contract in a helpers.sol file inherits
// the Basic contract, either directly or through a contract that does.
//
// Only one level of indirection is accepted: the set of verified contracts is
// computed once from direct Basic parents and never grows, so `C is B` with
// `B is A` and `A is Basic` is reported.
type HelpersInheritance struct {
	scanner ContractScanner
	base    string
}

// NewHelpersRule returns the Helpers rule with the default scanner.
func NewHelpersRule() *HelpersInheritance {
	return &HelpersInheritance{scanner: NewContractScanner(), base: basicContractName}
}

// Name implements Rule.
func (hi *HelpersInheritance) Name() string {
	return "Helpers"
}

// Description implements Rule.
func (hi *HelpersInheritance) Description() string {
	return "contracts in helpers.sol must inherit Basic directly or through a contract that does"
}

// Evaluate implements Rule. A file is reported at most once.
func (hi *HelpersInheritance) Evaluate(ctx context.Context, files m.FileSet) ([]m.Finding, error) {
	var findings []m.Finding

	for _, file := range files.Files() {
		if err := ctx.Err(); err != nil {
			return findings, err
		}

		if !strings.HasSuffix(string(file.Path), helpersSuffix) {
			continue
		}

		if decl, ok := hi.verify(file.Content); !ok {
			slog.Debug("helpers contract does not inherit Basic", "path", file.Path, "line", decl.Line, "declaration", decl.Text)
			findings = append(findings, m.Finding{Path: file.Path, Message: HelpersMessage})
		}
	}

	return findings, nil
}

// verify returns false with the first offending declaration when content
// fails the check. An empty declaration is returned when no contract inherits
// Basic at all.
func (hi *HelpersInheritance) verify(content string) (ContractDecl, bool) {
	decls := hi.scanner.Scan(content)

	base := map[string]struct{}{hi.base: {}}
	verified := make(map[string]struct{})

	for _, decl := range decls {
		if decl.InheritsFrom(base) {
			verified[decl.Name] = struct{}{}
		}
	}

	if len(verified) == 0 {
		return ContractDecl{}, false
	}

	for _, decl := range decls {
		if _, ok := verified[decl.Name]; ok {
			continue
		}

		if !decl.InheritsFrom(verified) {
			return decl, false
		}
	}

	return ContractDecl{}, true
}

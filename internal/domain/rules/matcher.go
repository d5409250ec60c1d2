package rules

import (
	"regexp"
	"strings"
)

// ConstructMatcher reports whether a source text declares a given construct.
type ConstructMatcher interface {
	Match(content string) bool
}

type keywordMatcher struct {
	pattern *regexp.Regexp
}

// NewKeywordMatcher matches any line that starts, after optional whitespace,
// with keyword followed by whitespace.
func NewKeywordMatcher(keyword string) ConstructMatcher {
	return &keywordMatcher{
		pattern: regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(keyword) + `\s+`),
	}
}

func (km *keywordMatcher) Match(content string) bool {
	return km.pattern.MatchString(content)
}

// ContractDecl is a single-line contract declaration found in a source text.
type ContractDecl struct {
	Name    string
	Parents []string
	Line    int
	Text    string
}

// InheritsFrom reports whether any of the direct parents is in names.
func (cd ContractDecl) InheritsFrom(names map[string]struct{}) bool {
	for _, parent := range cd.Parents {
		if _, ok := names[parent]; ok {
			return true
		}
	}

	return false
}

// ContractScanner extracts contract declarations from a source text.
type ContractScanner interface {
	Scan(content string) []ContractDecl
}

var (
	// contract <Name> <anything but a brace> {   on a single line
	contractDeclPattern = regexp.MustCompile(`(?m)\bcontract\s+([A-Za-z_$][A-Za-z0-9_$]*)([^{\n]*)\{`)
	heritagePattern     = regexp.MustCompile(`^\s+is\s+(.+?)\s*$`)
	identifierPattern   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*`)
	argumentsPattern    = regexp.MustCompile(`\([^()]*\)`)
	commentPattern      = regexp.MustCompile(`/\*.*?\*/|//.*$`)
)

type regexpContractScanner struct{}

// NewContractScanner returns the pattern-based contract declaration scanner.
func NewContractScanner() ContractScanner {
	return regexpContractScanner{}
}

func (regexpContractScanner) Scan(content string) []ContractDecl {
	matches := contractDeclPattern.FindAllStringSubmatchIndex(content, -1)
	decls := make([]ContractDecl, 0, len(matches))

	for _, match := range matches {
		decls = append(decls, ContractDecl{
			Name:    content[match[2]:match[3]],
			Parents: parseParents(content[match[4]:match[5]]),
			Line:    strings.Count(content[:match[0]], "\n") + 1,
			Text:    content[match[0]:match[1]],
		})
	}

	return decls
}

// parseParents turns " is A, B(arg) " into [A B]. Comments are ignored.
func parseParents(clause string) []string {
	heritage := heritagePattern.FindStringSubmatch(commentPattern.ReplaceAllString(clause, " "))
	if heritage == nil {
		return nil
	}

	list := heritage[1]
	for argumentsPattern.MatchString(list) {
		list = argumentsPattern.ReplaceAllString(list, "")
	}

	var parents []string

	for _, item := range strings.Split(list, ",") {
		name := identifierPattern.FindString(strings.TrimSpace(item))
		if name != "" {
			parents = append(parents, name)
		}
	}

	return parents
}

package model

// Finding is a single diagnostic produced by one rule for one file.
type Finding struct {
	Path    Path
	Message string
}

// Entry is a file path together with its messages, in append order.
type Entry struct {
	Path     Path
	Messages []string
}

// Diagnostics maps file paths to ordered messages.
// Paths keep the order in which they first received a message.
type Diagnostics struct {
	order    []Path
	messages map[Path][]string
}

// NewDiagnostics returns an empty Diagnostics.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{messages: make(map[Path][]string)}
}

// Append adds a message for path after any message already recorded for it.
func (d *Diagnostics) Append(path Path, message string) {
	if d.messages == nil {
		d.messages = make(map[Path][]string)
	}

	if _, ok := d.messages[path]; !ok {
		d.order = append(d.order, path)
	}

	d.messages[path] = append(d.messages[path], message)
}

// AppendFindings appends every finding in order.
func (d *Diagnostics) AppendFindings(findings []Finding) {
	for _, finding := range findings {
		d.Append(finding.Path, finding.Message)
	}
}

// Paths returns the reported paths in first-append order.
func (d *Diagnostics) Paths() []Path {
	if d == nil {
		return nil
	}

	paths := make([]Path, len(d.order))
	copy(paths, d.order)

	return paths
}

// Messages returns a copy of the messages recorded for path.
func (d *Diagnostics) Messages(path Path) []string {
	if d == nil {
		return nil
	}

	stored, ok := d.messages[path]
	if !ok {
		return nil
	}

	messages := make([]string, len(stored))
	copy(messages, stored)

	return messages
}

// Entries returns every path with its messages, in first-append order.
func (d *Diagnostics) Entries() []Entry {
	if d == nil {
		return nil
	}

	entries := make([]Entry, 0, len(d.order))
	for _, path := range d.order {
		entries = append(entries, Entry{Path: path, Messages: d.Messages(path)})
	}

	return entries
}

// Len returns the number of paths with at least one message.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}

	return len(d.order)
}

// Empty reports whether no message was recorded.
func (d *Diagnostics) Empty() bool {
	return d.Len() == 0
}

// RuleFailure records a rule that failed while evaluating the file set.
type RuleFailure struct {
	Rule string
	Err  error
}

// RuleInfo describes a rule for listings.
type RuleInfo struct {
	Name        string
	Description string
}

// Result is the outcome of running every rule against a file set.
type Result struct {
	Files       int
	Diagnostics *Diagnostics
	Failures    []RuleFailure
}

// Passed reports whether the run produced no diagnostics.
// Rule failures do not affect the outcome.
func (r Result) Passed() bool {
	return r.Diagnostics.Empty()
}

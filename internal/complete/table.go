package complete

import "strings"

// Candidate is a single completion suggestion: the text inserted into the
// command line plus a one-line description shown next to it.
type Candidate struct {
	Text        string // long form, e.g. "--justfile"
	Short       string // optional one-letter alias, e.g. "-f"
	Description string
}

// Matches reports whether the candidate should be offered for the word
// currently being typed. An empty word matches everything; otherwise either
// form may match by prefix.
func (c Candidate) Matches(current string) bool {
	if current == "" {
		return true
	}
	if strings.HasPrefix(c.Text, current) {
		return true
	}
	return c.Short != "" && strings.HasPrefix(c.Short, current)
}

// Table maps a command path to its ordered candidate list. It is populated
// once and read-only afterwards.
type Table map[string][]Candidate

// Append adds candidates to the list for path, skipping any whose text is
// already present so candidate text stays unique within a list.
func (t Table) Append(path string, candidates ...Candidate) {
	existing := make(map[string]struct{}, len(t[path]))
	for _, c := range t[path] {
		existing[c.Text] = struct{}{}
	}
	for _, c := range candidates {
		if _, ok := existing[c.Text]; ok {
			continue
		}
		existing[c.Text] = struct{}{}
		t[path] = append(t[path], c)
	}
}

// DefaultTable returns the static completion table for just's command-line
// interface. Descriptions match just's own --help output.
func DefaultTable() Table {
	return Table{
		RootCommand: {
			{Text: "--color", Description: "Print colorful output"},
			{Text: "--justfile", Short: "-f", Description: "Use JUSTFILE as justfile."},
			{Text: "--set", Description: "Override VARIABLE with VALUE"},
			{Text: "--shell", Description: "Invoke SHELL to run recipes"},
			{Text: "--shell-arg", Description: "Invoke shell with SHELL-ARG as an argument"},
			{
				Text:        "--working-directory",
				Short:       "-d",
				Description: "Use WORKING-DIRECTORY as working directory. --justfile must also be set",
			},
			{Text: "--completions", Description: "Print shell completion script for SHELL"},
			{Text: "--show", Short: "-s", Description: "Show information about RECIPE"},
			{Text: "--dry-run", Description: "Print what just would do without doing it"},
			{Text: "--highlight", Description: "Highlight echoed recipe lines in bold"},
			{Text: "--no-highlight", Description: "Don't highlight echoed recipe lines in bold"},
			{Text: "--quiet", Short: "-q", Description: "Suppress all output"},
			{Text: "--clear-shell-args", Description: "Clear shell arguments"},
			{Text: "--verbose", Short: "-v", Description: "Use verbose output"},
			{Text: "--dump", Description: "Print entire justfile"},
			{
				Text:        "--edit",
				Short:       "-e",
				Description: "Edit justfile with editor given by $VISUAL or $EDITOR, falling back to vim",
			},
			{Text: "--evaluate", Description: "Print evaluated variables"},
			{Text: "--init", Description: "Initialize new justfile in project root"},
			{Text: "--list", Short: "-l", Description: "List available recipes and their arguments"},
			{Text: "--summary", Description: "List names of available recipes"},
			{Text: "--variables", Description: "List names of variables"},
			{Text: "--help", Short: "-h", Description: "Print help information"},
			{Text: "--version", Short: "-V", Description: "Print version information"},
		},
	}
}

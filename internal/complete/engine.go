package complete

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// RootCommand is the name of the completed tool and the root of every
	// command path.
	RootCommand = "just"

	// DefaultColumnWidth is the display column candidates are padded to so
	// descriptions line up.
	DefaultColumnWidth = 14

	pathSeparator = "."
)

// Suggestion pairs the text a shell should insert with the padded display
// string it should render in its candidate list.
type Suggestion struct {
	Replacement string
	Display     string
	Description string
}

// RecipeSource provides dynamic recipe-name candidates. Implementations must
// degrade to an empty list on failure; completion never surfaces errors.
type RecipeSource interface {
	Recipes() []string
}

// VariableSource provides variable-name candidates for flags that take a
// VARIABLE argument. Same silence contract as RecipeSource.
type VariableSource interface {
	Variables() []string
}

// Engine answers completion queries against a static table, optionally
// splicing in recipe and variable names queried from just itself.
type Engine struct {
	table     Table
	width     int
	recipes   RecipeSource
	variables VariableSource
}

// NewEngine creates an engine over the given table. A width of zero or less
// falls back to DefaultColumnWidth.
func NewEngine(table Table, width int) *Engine {
	if width <= 0 {
		width = DefaultColumnWidth
	}
	return &Engine{table: table, width: width}
}

// SetRecipeSource attaches a source of dynamic recipe-name candidates.
func (e *Engine) SetRecipeSource(src RecipeSource) {
	e.recipes = src
}

// SetVariableSource attaches a source of variable-name candidates.
func (e *Engine) SetVariableSource(src VariableSource) {
	e.variables = src
}

// Width returns the display column width the engine pads to.
func (e *Engine) Width() int {
	return e.width
}

// CommandPath joins the non-flag words typed so far into the lookup key for
// the table. The first word (program name) and the last word (the one being
// typed) are excluded, and the walk stops at the first flag.
func CommandPath(words []string) string {
	path := RootCommand
	if len(words) < 2 {
		return path
	}
	for _, word := range words[1 : len(words)-1] {
		if strings.HasPrefix(word, "-") {
			break
		}
		path += pathSeparator + word
	}
	return path
}

// Suggest returns the candidates applicable at the current position. Unknown
// command paths yield an empty result; a shell treats that as "nothing to
// suggest", not as an error.
func (e *Engine) Suggest(words []string) []Suggestion {
	current := ""
	if len(words) > 1 {
		current = words[len(words)-1]
	}

	// The word before the one being typed may demand a value instead of
	// another flag, e.g. `just --set <VARIABLE>`.
	if suggestions, ok := e.valueSuggestions(words, current); ok {
		return suggestions
	}

	path := CommandPath(words)
	candidates := e.table[path]
	suggestions := make([]Suggestion, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if !c.Matches(current) {
			continue
		}
		s := e.suggestion(c, current)
		if _, ok := seen[s.Replacement]; ok {
			continue
		}
		seen[s.Replacement] = struct{}{}
		suggestions = append(suggestions, s)
	}

	if e.recipes != nil && path == RootCommand && !strings.HasPrefix(current, "-") {
		for _, s := range nameSuggestions(e.recipes.Recipes(), current) {
			if _, ok := seen[s.Replacement]; ok {
				continue
			}
			seen[s.Replacement] = struct{}{}
			suggestions = append(suggestions, s)
		}
	}

	return suggestions
}

// valueSuggestions handles the flags whose argument justcomp knows how to
// enumerate: --set takes a variable name, --show takes a recipe name.
func (e *Engine) valueSuggestions(words []string, current string) ([]Suggestion, bool) {
	if len(words) < 2 {
		return nil, false
	}

	switch words[len(words)-2] {
	case "--set":
		if e.variables == nil {
			return nil, false
		}
		return nameSuggestions(e.variables.Variables(), current), true
	case "--show", "-s":
		if e.recipes == nil {
			return nil, false
		}
		return nameSuggestions(e.recipes.Recipes(), current), true
	}

	return nil, false
}

func nameSuggestions(names []string, current string) []Suggestion {
	suggestions := make([]Suggestion, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if current != "" && !strings.HasPrefix(name, current) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		suggestions = append(suggestions, Suggestion{Replacement: name, Display: name})
	}
	return suggestions
}

func (e *Engine) suggestion(c Candidate, current string) Suggestion {
	replacement := c.Text
	// A single-dash prefix that matched the short form should complete to
	// the short form the user started typing.
	if current != "" && !strings.HasPrefix(current, "--") &&
		c.Short != "" && strings.HasPrefix(c.Short, current) {
		replacement = c.Short
	}

	display := c.Text
	if c.Description != "" {
		display = c.Text + padding(c.Text, e.width) + c.Description
	}

	return Suggestion{Replacement: replacement, Display: display, Description: c.Description}
}

// padding returns the spaces needed to pad text out to the given display
// column, measured in terminal cells so wide characters count double.
// Text already at or past the column gets no padding.
func padding(text string, column int) string {
	width := runewidth.StringWidth(text)
	if width >= column {
		return ""
	}
	return strings.Repeat(" ", column-width)
}

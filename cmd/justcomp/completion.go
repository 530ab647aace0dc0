package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/justcomp/justcomp/internal/errors"
	"github.com/justcomp/justcomp/internal/justfile"
)

var supportedShells = []string{"bash", "zsh", "fish"}

// NewCompletionCommand creates the completion command definition
func NewCompletionCommand() *cli.Command {
	return &cli.Command{
		Name:  "completion",
		Usage: "Generate shell completion script for just",
		Description: "Generate completion scripts that register just with bash, zsh, or fish. " +
			"The generated scripts call back into 'justcomp complete' on every tab press, so " +
			"flag descriptions, recipe names, and variable names all come from one place.",
		Commands: []*cli.Command{
			{
				Name:        "bash",
				Usage:       "Generate bash completion script",
				Description: "Generate bash completion script for the just command",
				Action:      completionBash,
			},
			{
				Name:        "zsh",
				Usage:       "Generate zsh completion script",
				Description: "Generate zsh completion script for the just command",
				Action:      completionZsh,
			},
			{
				Name:        "fish",
				Usage:       "Generate fish completion script",
				Description: "Generate fish completion script for the just command",
				Action:      completionFish,
			},
			{
				Name:  "powershell",
				Usage: "Generate PowerShell completion script",
				Action: func(_ context.Context, _ *cli.Command) error {
					return errors.UnsupportedShell("powershell", supportedShells)
				},
			},
			{
				Name:   "__recipes",
				Hidden: true,
				Usage:  "List recipe names for completion",
				Action: func(_ context.Context, cmd *cli.Command) error {
					printNames(commandWriter(cmd), func(s *justfile.Source) []string {
						return s.Recipes()
					})
					return nil
				},
			},
			{
				Name:   "__variables",
				Hidden: true,
				Usage:  "List variable names for completion",
				Action: func(_ context.Context, cmd *cli.Command) error {
					printNames(commandWriter(cmd), func(s *justfile.Source) []string {
						return s.Variables()
					})
					return nil
				},
			},
		},
	}
}

// printNames prints dynamic candidates one per line. Every failure mode is
// silent: an empty list is a normal completion answer.
func printNames(w io.Writer, query func(*justfile.Source) []string) {
	cwd, err := completeGetwd()
	if err != nil {
		return
	}

	project, err := completeDiscover(cwd)
	if err != nil {
		return
	}

	source := justfile.NewSource(project, completeNewExecutor())
	for _, name := range query(source) {
		fmt.Fprintln(w, name)
	}
}

func completionBash(_ context.Context, cmd *cli.Command) error {
	fmt.Fprintln(commandWriter(cmd), `#!/bin/bash
# justcomp bash completion for just
# Add this to your ~/.bashrc or ~/.bash_profile:
# eval "$(justcomp completion bash)"

_just_completion() {
    local cur words candidates

    cur="${COMP_WORDS[COMP_CWORD]}"
    words=("${COMP_WORDS[@]:0:COMP_CWORD+1}")

    candidates=$(justcomp complete --format plain -- "${words[@]}" 2>/dev/null)
    COMPREPLY=( $(compgen -W "$candidates" -- "$cur") )
}

complete -F _just_completion just`)
	return nil
}

func completionZsh(_ context.Context, cmd *cli.Command) error {
	fmt.Fprintln(commandWriter(cmd), `#compdef just
# justcomp zsh completion for just
# Add this to your ~/.zshrc:
# eval "$(justcomp completion zsh)"

_just() {
    local -a pairs
    pairs=("${(@f)$(justcomp complete --format describe -- "${words[@]}" 2>/dev/null)}")
    if (( ${#pairs[@]} )); then
        _describe 'just' pairs
    fi
}

if [ -n "$ZSH_VERSION" ]; then
    compdef _just just
fi`)
	return nil
}

func completionFish(_ context.Context, cmd *cli.Command) error {
	fmt.Fprintln(commandWriter(cmd), `# justcomp fish completion for just
# Save as ~/.config/fish/completions/just.fish or run:
# justcomp completion fish | source

function __just_complete
    set -l tokens (commandline -opc)
    set -l current (commandline -ct)
    justcomp complete --format tab -- $tokens $current 2>/dev/null
end

complete -c just -f -a '(__just_complete)'`)
	return nil
}

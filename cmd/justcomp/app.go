package main

import "github.com/urfave/cli/v3"

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "justcomp",
		Usage: "Shell completion helper for the just command runner",
		Description: "justcomp answers tab-completion queries for just: it knows just's flags and " +
			"their descriptions, asks just itself for recipe and variable names, and generates " +
			"the per-shell scripts that wire those answers into bash, zsh, and fish.",
		Version:               version,
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			NewCompleteCommand(),
			NewCompletionCommand(),
			NewTableCommand(),
			NewInitCommand(),
		},
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/justcomp/justcomp/internal/complete"
	"github.com/justcomp/justcomp/internal/config"
	"github.com/justcomp/justcomp/internal/errors"
)

// Display constants
const (
	flagHeaderDashes = 4
	descHeaderDashes = 11
	columnSpacing    = 3
)

// Variables to allow mocking in tests
var (
	tableGetwd       = os.Getwd
	getTerminalWidth = func() int {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			return 80 //nolint:mnd // Default terminal width
		}
		return width
	}
)

// NewTableCommand creates the table command definition
func NewTableCommand() *cli.Command {
	return &cli.Command{
		Name:          "table",
		Aliases:       []string{"ls"},
		Usage:         "Print the completion table",
		Description:   "Shows every candidate justcomp knows for just, including extras from .justcomp.yml.",
		ShellComplete: completeFlags,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "compact",
				Aliases: []string{"c"},
				Usage:   "Minimize column widths for narrow or redirected output",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only display flag names",
			},
		},
		Action: tableCommand,
	}
}

func tableCommand(_ context.Context, cmd *cli.Command) error {
	table := complete.DefaultTable()

	// The table command is interactive, unlike complete: a broken config is
	// surfaced here instead of being swallowed.
	cwd, err := tableGetwd()
	if err != nil {
		return errors.DirectoryAccessFailed("access current", ".", err)
	}
	if project, err := completeDiscover(cwd); err == nil {
		cfg, err := config.LoadConfig(project.Dir())
		if err != nil {
			return errors.ConfigLoadFailed(project.Dir()+"/"+config.ConfigFileName, err)
		}
		appendExtraCandidates(table, cfg)
	}

	w := commandWriter(cmd)
	candidates := table[complete.RootCommand]

	if cmd.Bool("quiet") {
		for _, c := range candidates {
			fmt.Fprintln(w, c.Text)
		}
		return nil
	}

	displayTable(w, candidates, cmd.Bool("compact"), getTerminalWidth())
	return nil
}

// flagForms renders both forms of a candidate the way help output does,
// e.g. "-f, --justfile".
func flagForms(c complete.Candidate) string {
	if c.Short == "" {
		return c.Text
	}
	return c.Short + ", " + c.Text
}

func displayTable(w io.Writer, candidates []complete.Candidate, compact bool, termWidth int) {
	flagWidth := len("FLAG")
	for _, c := range candidates {
		if width := runewidth.StringWidth(flagForms(c)); width > flagWidth {
			flagWidth = width
		}
	}

	spacing := columnSpacing
	if compact {
		spacing = 1
	}

	// Descriptions wider than the terminal are cut rather than wrapped;
	// one row per candidate keeps the output greppable.
	descWidth := termWidth - flagWidth - spacing
	if descWidth < len("DESCRIPTION") {
		descWidth = len("DESCRIPTION")
	}

	printRow(w, "FLAG", "DESCRIPTION", flagWidth, spacing)
	printRow(w, strings.Repeat("-", flagHeaderDashes), strings.Repeat("-", descHeaderDashes), flagWidth, spacing)

	for _, c := range candidates {
		desc := c.Description
		if !compact {
			desc = runewidth.Truncate(desc, descWidth, "...")
		}
		printRow(w, flagForms(c), desc, flagWidth, spacing)
	}
}

func printRow(w io.Writer, flag, desc string, flagWidth, spacing int) {
	pad := flagWidth - runewidth.StringWidth(flag)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(w, "%s%s%s\n", flag, strings.Repeat(" ", pad+spacing), desc)
}

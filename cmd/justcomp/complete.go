package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/justcomp/justcomp/internal/command"
	"github.com/justcomp/justcomp/internal/complete"
	"github.com/justcomp/justcomp/internal/config"
	jio "github.com/justcomp/justcomp/internal/io"
	"github.com/justcomp/justcomp/internal/justfile"
)

// Output formats understood by the complete command. Each matches what one
// shell's completion machinery wants to consume.
const (
	formatPadded   = "padded"   // text padded to the display column, then description
	formatPlain    = "plain"    // replacement text only (bash compgen)
	formatTab      = "tab"      // text<TAB>description (fish)
	formatDescribe = "describe" // text:description (zsh _describe)
)

// Variables to allow mocking in tests
var (
	completeGetwd       = os.Getwd
	completeDiscover    = justfile.Discover
	completeNewExecutor = command.NewRealExecutor
)

// NewCompleteCommand creates the complete command definition
func NewCompleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Usage:     "Print completion candidates for a typed command line",
		ArgsUsage: "[--] WORD...",
		Description: "Answers a single completion query. The arguments are the words typed on the " +
			"just command line so far, program name first, the word being completed last " +
			"(possibly empty). One candidate is printed per line; an unknown command line " +
			"prints nothing and still exits zero, which shells render as 'no suggestions'.",
		ShellComplete: completeFlags,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "width",
				Usage: fmt.Sprintf("Display column candidates are padded to (default %d)", complete.DefaultColumnWidth),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: padded, plain, tab, or describe",
				Value: formatPadded,
			},
			&cli.BoolFlag{
				Name:  "no-descriptions",
				Usage: "Print replacement text only (same as --format plain)",
			},
		},
		Action: completeCommand,
	}
}

func completeCommand(_ context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	if cmd.Bool("no-descriptions") {
		format = formatPlain
	}
	switch format {
	case formatPadded, formatPlain, formatTab, formatDescribe:
	default:
		return fmt.Errorf("unknown format %q (expected padded, plain, tab, or describe)", format)
	}

	engine := buildEngine(cmd)

	w := jio.NewFlushingWriter(commandWriter(cmd))
	for _, s := range engine.Suggest(cmd.Args().Slice()) {
		switch format {
		case formatPlain:
			fmt.Fprintln(w, s.Replacement)
		case formatTab:
			if s.Description == "" {
				fmt.Fprintln(w, s.Replacement)
			} else {
				fmt.Fprintf(w, "%s\t%s\n", s.Replacement, s.Description)
			}
		case formatDescribe:
			if s.Description == "" {
				fmt.Fprintln(w, s.Replacement)
			} else {
				fmt.Fprintf(w, "%s:%s\n", s.Replacement, s.Description)
			}
		default:
			fmt.Fprintln(w, s.Display)
		}
	}

	return w.Flush()
}

// buildEngine assembles the engine for one query: static table, config
// overrides, and dynamic sources. Config or discovery problems are swallowed
// here; a completion request must never print an error into the shell.
func buildEngine(cmd *cli.Command) *complete.Engine {
	var project *justfile.Project
	if cwd, err := completeGetwd(); err == nil {
		project, _ = completeDiscover(cwd)
	}

	cfg := loadConfigQuiet(project)

	table := complete.DefaultTable()
	width := 0
	if cfg != nil {
		width = cfg.Display.ColumnWidth
		appendExtraCandidates(table, cfg)
	}
	if cmd.IsSet("width") {
		width = cmd.Int("width")
	}

	engine := complete.NewEngine(table, width)

	source := justfile.NewSource(project, completeNewExecutor())
	if cfg == nil || cfg.RecipesEnabled() {
		engine.SetRecipeSource(source)
	}
	if cfg == nil || cfg.VariablesEnabled() {
		engine.SetVariableSource(source)
	}

	return engine
}

func loadConfigQuiet(project *justfile.Project) *config.Config {
	if project == nil {
		return nil
	}
	cfg, err := config.LoadConfig(project.Dir())
	if err != nil {
		return nil
	}
	return cfg
}

func appendExtraCandidates(table complete.Table, cfg *config.Config) {
	for path, extras := range cfg.Extra {
		candidates := make([]complete.Candidate, 0, len(extras))
		for _, extra := range extras {
			candidates = append(candidates, complete.Candidate{
				Text:        extra.Text,
				Short:       extra.Short,
				Description: extra.Description,
			})
		}
		table.Append(path, candidates...)
	}
}

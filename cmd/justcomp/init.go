package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/justcomp/justcomp/internal/config"
	"github.com/justcomp/justcomp/internal/errors"
)

const configFileMode = 0o600

// Variable to allow mocking in tests
var osGetwd = os.Getwd

// NewInitCommand creates the init command definition
func NewInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize configuration file",
		Description: "Creates a .justcomp.yml configuration file next to the justfile " +
			"with example settings and extra completion entries.",
		ShellComplete: completeFlags,
		Action:        initCommand,
	}
}

func initCommand(_ context.Context, cmd *cli.Command) error {
	cwd, err := osGetwd()
	if err != nil {
		return errors.DirectoryAccessFailed("access current", ".", err)
	}

	project, err := completeDiscover(cwd)
	if err != nil {
		return errors.JustfileNotFound(cwd)
	}

	configPath := filepath.Join(project.Dir(), config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.ConfigAlreadyExists(configPath)
	}

	configContent := `# justcomp configuration
version: "1.0"

# How candidates are rendered
display:
  # Display column candidate text is padded to before its description
  column_width: 14

# Completions that ask just itself for names
dynamic:
  # Offer recipe names from 'just --summary'
  recipes: true
  # Offer variable names from 'just --variables' after --set
  variables: true

# Extra candidates appended per command path (commented out):
# extra:
#   just:
#     - text: --choose
#       description: Select a recipe to run interactively
`

	if err := os.WriteFile(configPath, []byte(configContent), configFileMode); err != nil {
		return errors.DirectoryAccessFailed("create configuration file", configPath, err)
	}

	w := commandWriter(cmd)
	fmt.Fprintf(w, "Configuration file created: %s\n", configPath)
	fmt.Fprintln(w, "Edit this file to customize completion for this project.")
	return nil
}

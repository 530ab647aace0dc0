package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

const completionFlag = "--generate-shell-completion"

func commandWriter(cmd *cli.Command) io.Writer {
	writer := cmd.Root().Writer
	if writer == nil {
		return os.Stdout
	}
	return writer
}

// completeFlags is the ShellComplete hook for justcomp's own commands: it
// suggests the command's visible flags while a dash-prefixed word is typed.
func completeFlags(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}

	var args []string
	if cmdArgs := cmd.Args(); cmdArgs != nil {
		args = cmdArgs.Slice()
	}

	printFlagSuggestions(cmd, currentCompletionWord(args))
}

func printFlagSuggestions(cmd *cli.Command, current string) bool {
	if !strings.HasPrefix(current, "-") {
		return false
	}

	w := commandWriter(cmd)
	seen := make(map[string]struct{})
	emitted := false

	for _, flag := range cmd.Flags {
		if !isFlagVisible(flag) {
			continue
		}
		for _, name := range flag.Names() {
			formatted := formatFlagName(name)
			if current != "-" && current != "--" && !strings.HasPrefix(formatted, current) {
				continue
			}
			if _, ok := seen[formatted]; ok {
				continue
			}
			seen[formatted] = struct{}{}
			fmt.Fprintln(w, formatted)
			emitted = true
		}
	}

	return emitted
}

// currentCompletionWord returns the word being completed, skipping the
// sentinel flag urfave/cli appends to completion invocations.
func currentCompletionWord(args []string) string {
	var current string
	for _, arg := range args {
		if arg == completionFlag {
			continue
		}
		current = arg
	}
	return current
}

func isFlagVisible(flag cli.Flag) bool {
	if visibility, ok := flag.(interface{ IsVisible() bool }); ok && !visibility.IsVisible() {
		return false
	}
	return true
}

func formatFlagName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

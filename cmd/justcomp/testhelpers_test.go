package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justcomp/justcomp/internal/command"
)

// runApp runs the full app with the given arguments and returns its output.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	err := app.Run(context.Background(), append([]string{"justcomp"}, args...))
	return buf.String(), err
}

// stubExecutor serves canned output for just queries keyed by the last
// argument (--summary or --variables).
type stubExecutor struct {
	summary   string
	variables string
	fail      bool
}

func (s *stubExecutor) Execute(commands []command.Command) (*command.ExecutionResult, error) {
	results := make([]command.CommandResult, 0, len(commands))
	for _, cmd := range commands {
		result := command.CommandResult{Command: cmd}
		if s.fail {
			result.Error = os.ErrNotExist
		} else if len(cmd.Args) > 0 && cmd.Args[len(cmd.Args)-1] == "--variables" {
			result.Output = s.variables
		} else {
			result.Output = s.summary
		}
		results = append(results, result)
	}
	return &command.ExecutionResult{Results: results}, nil
}

// setupProject creates a temp directory with a justfile and points the
// discovery and executor hooks at it for the duration of the test.
func setupProject(t *testing.T, executor command.Executor) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "justfile"), []byte("default:\n\techo hi\n"), 0o600))

	origGetwd := completeGetwd
	origExecutor := completeNewExecutor
	completeGetwd = func() (string, error) { return dir, nil }
	if executor != nil {
		completeNewExecutor = func() command.Executor { return executor }
	}
	t.Cleanup(func() {
		completeGetwd = origGetwd
		completeNewExecutor = origExecutor
	})

	return dir
}

// setupNoProject points discovery at an empty directory with no justfile.
func setupNoProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	origGetwd := completeGetwd
	origExecutor := completeNewExecutor
	completeGetwd = func() (string, error) { return dir, nil }
	completeNewExecutor = func() command.Executor { return &stubExecutor{} }
	t.Cleanup(func() {
		completeGetwd = origGetwd
		completeNewExecutor = origExecutor
	})

	return dir
}

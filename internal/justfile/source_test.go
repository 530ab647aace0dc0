package justfile

import (
	"errors"
	"testing"

	"github.com/justcomp/justcomp/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor returns a canned result for every execution
type mockExecutor struct {
	executed []command.Command
	output   string
	cmdErr   error
	execErr  error
}

func (m *mockExecutor) Execute(commands []command.Command) (*command.ExecutionResult, error) {
	m.executed = append(m.executed, commands...)
	if m.execErr != nil {
		return nil, m.execErr
	}

	results := make([]command.CommandResult, 0, len(commands))
	for _, cmd := range commands {
		results = append(results, command.CommandResult{
			Command: cmd,
			Output:  m.output,
			Error:   m.cmdErr,
		})
	}
	return &command.ExecutionResult{Results: results}, nil
}

func TestSourceRecipes(t *testing.T) {
	t.Run("splits summary output into names", func(t *testing.T) {
		executor := &mockExecutor{output: "build test\nrelease"}
		source := NewSource(nil, executor)

		assert.Equal(t, []string{"build", "test", "release"}, source.Recipes())
	})

	t.Run("pins the justfile when a project is known", func(t *testing.T) {
		executor := &mockExecutor{output: "build"}
		project := &Project{dir: "/repo", path: "/repo/justfile"}
		source := NewSource(project, executor)

		source.Recipes()

		require.Len(t, executor.executed, 1)
		assert.Equal(t, []string{"--justfile", "/repo/justfile", "--summary"}, executor.executed[0].Args)
	})

	t.Run("silent on command failure", func(t *testing.T) {
		executor := &mockExecutor{cmdErr: errors.New("just: command not found")}
		source := NewSource(nil, executor)

		assert.Empty(t, source.Recipes())
	})

	t.Run("silent on executor failure", func(t *testing.T) {
		executor := &mockExecutor{execErr: errors.New("boom")}
		source := NewSource(nil, executor)

		assert.Empty(t, source.Recipes())
	})

	t.Run("silent without an executor", func(t *testing.T) {
		source := NewSource(nil, nil)

		assert.Empty(t, source.Recipes())
	})
}

func TestSourceVariables(t *testing.T) {
	executor := &mockExecutor{output: "version revision"}
	source := NewSource(nil, executor)

	assert.Equal(t, []string{"version", "revision"}, source.Variables())
	require.Len(t, executor.executed, 1)
	assert.Equal(t, []string{"--variables"}, executor.executed[0].Args)
}

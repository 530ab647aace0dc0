package command

// executor implements Executor interface
type executor struct {
	shell ShellExecutor
}

// NewExecutor creates a new command executor with the given shell executor
func NewExecutor(shell ShellExecutor) Executor {
	return &executor{
		shell: shell,
	}
}

// NewRealExecutor creates an executor backed by real process execution
func NewRealExecutor() Executor {
	return NewExecutor(NewRealShellExecutor())
}

// Execute executes the given commands in sequence and returns the results.
// A failing command is recorded in its CommandResult; Execute itself only
// fails on infrastructure problems.
func (e *executor) Execute(commands []Command) (*ExecutionResult, error) {
	result := &ExecutionResult{
		Results: make([]CommandResult, 0, len(commands)),
	}

	for _, cmd := range commands {
		output, err := e.shell.Execute(cmd.Name, cmd.Args, cmd.WorkDir)

		result.Results = append(result.Results, CommandResult{
			Command: cmd,
			Output:  output,
			Error:   err,
		})
	}

	return result, nil
}

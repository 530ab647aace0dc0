package command

// justCommand builds a just invocation pinned to a specific justfile so the
// answer does not depend on the directory the completion runs from.
func justCommand(justfilePath string, args ...string) Command {
	full := make([]string, 0, len(args)+2)
	if justfilePath != "" {
		full = append(full, "--justfile", justfilePath)
	}
	full = append(full, args...)

	return Command{
		Name: "just",
		Args: full,
	}
}

// JustSummary builds a `just --summary` command listing recipe names
func JustSummary(justfilePath string) Command {
	return justCommand(justfilePath, "--summary")
}

// JustVariables builds a `just --variables` command listing variable names
func JustVariables(justfilePath string) Command {
	return justCommand(justfilePath, "--variables")
}

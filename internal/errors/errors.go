package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common error messages with helpful context and suggestions

// Justfile Errors
func JustfileNotFound(startDir string) error {
	msg := fmt.Sprintf(`no justfile found in '%s' or any parent directory

Solutions:
  • Run 'justcomp init' inside a project that has a justfile
  • Create one with 'just --init'
  • Check if you're in the correct directory`, startDir)
	return errors.New(msg)
}

func JustCommandFailed(command, output string) error {
	cleanOutput := strings.TrimSpace(output)
	if cleanOutput == "" {
		cleanOutput = "no additional details available"
	}

	msg := fmt.Sprintf(`just command failed: %s

Details: %s

Tip: Try running the just command manually to see the full error`, command, cleanOutput)
	return errors.New(msg)
}

// Configuration Errors
func ConfigLoadFailed(configPath string, parseError error) error {
	msg := fmt.Sprintf("failed to load configuration from '%s'", configPath)

	parseErrorStr := parseError.Error()
	if strings.Contains(parseErrorStr, "yaml") || strings.Contains(parseErrorStr, "unmarshal") {
		msg += `

Cause: YAML syntax error in configuration file
Solutions:
  • Check YAML syntax and indentation
  • Validate YAML at https://yamllint.com/
  • Run 'justcomp init' to recreate the configuration`
	} else if strings.Contains(parseErrorStr, "permission denied") {
		msg += `

Cause: Permission denied reading configuration file
Solution: Check file permissions with 'ls -la .justcomp.yml'`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", parseError)
	return errors.New(msg)
}

func ConfigAlreadyExists(configPath string) error {
	msg := fmt.Sprintf(`configuration file already exists: %s

Options:
  • Edit the existing file manually
  • Delete it and run 'justcomp init' again`, configPath)
	return errors.New(msg)
}

// File System Errors
func DirectoryAccessFailed(operation, path string, originalError error) error {
	msg := fmt.Sprintf("failed to %s directory: %s", operation, path)

	errorStr := originalError.Error()
	if strings.Contains(errorStr, "permission denied") {
		msg += `

Cause: Permission denied
Solutions:
  • Check directory permissions
  • Run with appropriate privileges
  • Ensure you own the directory`
	} else if strings.Contains(errorStr, "no such file or directory") {
		msg += `

Cause: Directory does not exist
Solutions:
  • Create the parent directory first
  • Check the path spelling
  • Use an absolute path`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", originalError)
	return errors.New(msg)
}

// Shell Integration Errors
func UnsupportedShell(shell string, supportedShells []string) error {
	msg := fmt.Sprintf("unsupported shell: %s", shell)

	if len(supportedShells) > 0 {
		msg += "\n\nSupported shells:"
		for _, s := range supportedShells {
			msg += fmt.Sprintf("\n  • %s", s)
		}
	}

	msg += "\n\nTip: Run 'justcomp completion --help' to see setup instructions"
	return errors.New(msg)
}

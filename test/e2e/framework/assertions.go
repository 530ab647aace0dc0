package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err, "Expected error containing '%s', but got no error", expected)
	assert.Contains(t, err.Error(), expected, "Expected error containing '%s', got: %v", expected, err)
}

func AssertOutputContains(t *testing.T, output, expected string) {
	t.Helper()
	assert.Contains(t, output, expected, "Expected output containing '%s', got: %s", expected, output)
}

func AssertOutputNotContains(t *testing.T, output, unexpected string) {
	t.Helper()
	assert.NotContains(t, output, unexpected, "Expected output not to contain '%s', got: %s", unexpected, output)
}

func AssertHelpfulError(t *testing.T, output string) {
	t.Helper()

	helpfulElements := []string{
		"Suggestions:",
		"Solutions:",
		"Solution:",
		"Cause:",
		"Tip:",
		"•",
		"Examples:",
		"Usage:",
	}

	found := false
	for _, element := range helpfulElements {
		if strings.Contains(output, element) {
			found = true
			break
		}
	}

	if !found {
		t.Errorf("Error message does not appear to be helpful. Got: %s", output)
	}
}

func AssertMultipleStringsInOutput(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		assert.Contains(t, output, exp, "Expected output to contain '%s', got: %s", exp, output)
	}
}

func AssertNoError(t *testing.T, err error) {
	t.Helper()
	assert.NoError(t, err)
}

func AssertError(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
}

func AssertFileExists(t *testing.T, project *TestProject, path string) {
	t.Helper()
	assert.True(t, project.HasFile(path), "Expected file '%s' to exist", path)
}

func AssertFileContains(t *testing.T, project *TestProject, path, content string) {
	t.Helper()
	assert.True(t, project.HasFile(path), "File '%s' does not exist", path)
	if project.HasFile(path) {
		fileContent := project.ReadFile(path)
		assert.Contains(t, fileContent, content, "Expected file '%s' to contain '%s', got: %s", path, content, fileContent)
	}
}

// AssertLineCount asserts how many non-empty lines the output has.
func AssertLineCount(t *testing.T, output string, expected int) {
	t.Helper()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if output == "" {
		lines = nil
	}
	assert.Len(t, lines, expected, "Expected %d lines, got %d: %s", expected, len(lines), output)
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteRootCommandLine(t *testing.T) {
	setupProject(t, &stubExecutor{summary: "build test"})

	output, err := runApp(t, "complete", "--", "just")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Len(t, lines, 25, "23 flags plus 2 recipes")
	assert.Equal(t, "--color       Print colorful output", lines[0])
	assert.Equal(t, "build", lines[23])
	assert.Equal(t, "test", lines[24])
}

func TestCompletePrefixFiltering(t *testing.T) {
	setupProject(t, &stubExecutor{})

	t.Run("long flag prefix", func(t *testing.T) {
		output, err := runApp(t, "complete", "--format", "plain", "--", "just", "--dr")

		require.NoError(t, err)
		assert.Equal(t, "--dry-run\n", output)
	})

	t.Run("short flag completes to short form", func(t *testing.T) {
		output, err := runApp(t, "complete", "--format", "plain", "--", "just", "-V")

		require.NoError(t, err)
		assert.Equal(t, "-V\n", output)
	})
}

func TestCompleteUnknownPathPrintsNothing(t *testing.T) {
	setupProject(t, &stubExecutor{})

	output, err := runApp(t, "complete", "--", "just", "unknown-subcommand", "--fl")

	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestCompleteFormats(t *testing.T) {
	setupProject(t, &stubExecutor{})

	t.Run("plain", func(t *testing.T) {
		output, err := runApp(t, "complete", "--format", "plain", "--", "just", "--dump")

		require.NoError(t, err)
		assert.Equal(t, "--dump\n", output)
	})

	t.Run("no-descriptions alias", func(t *testing.T) {
		output, err := runApp(t, "complete", "--no-descriptions", "--", "just", "--dump")

		require.NoError(t, err)
		assert.Equal(t, "--dump\n", output)
	})

	t.Run("tab", func(t *testing.T) {
		output, err := runApp(t, "complete", "--format", "tab", "--", "just", "--dump")

		require.NoError(t, err)
		assert.Equal(t, "--dump\tPrint entire justfile\n", output)
	})

	t.Run("describe", func(t *testing.T) {
		output, err := runApp(t, "complete", "--format", "describe", "--", "just", "--dump")

		require.NoError(t, err)
		assert.Equal(t, "--dump:Print entire justfile\n", output)
	})

	t.Run("padded is the default", func(t *testing.T) {
		output, err := runApp(t, "complete", "--", "just", "--dump")

		require.NoError(t, err)
		assert.Equal(t, "--dump        Print entire justfile\n", output)
	})

	t.Run("unknown format errors", func(t *testing.T) {
		_, err := runApp(t, "complete", "--format", "json", "--", "just")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})
}

func TestCompleteWidthFlag(t *testing.T) {
	setupProject(t, &stubExecutor{})

	output, err := runApp(t, "complete", "--width", "20", "--", "just", "--dump")

	require.NoError(t, err)
	assert.Equal(t, "--dump              Print entire justfile\n", output)
}

func TestCompleteValueCompletion(t *testing.T) {
	setupProject(t, &stubExecutor{summary: "build test", variables: "version target"})

	t.Run("--set offers variables", func(t *testing.T) {
		output, err := runApp(t, "complete", "--format", "plain", "--", "just", "--set", "")

		require.NoError(t, err)
		assert.Equal(t, "version\ntarget\n", output)
	})

	t.Run("--show offers recipes", func(t *testing.T) {
		output, err := runApp(t, "complete", "--format", "plain", "--", "just", "--show", "te")

		require.NoError(t, err)
		assert.Equal(t, "test\n", output)
	})
}

func TestCompleteConfigOverrides(t *testing.T) {
	dir := setupProject(t, &stubExecutor{summary: "build"})

	configContent := `display:
  column_width: 16
dynamic:
  recipes: false
extra:
  just:
    - text: --choose
      description: Select a recipe to run interactively
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".justcomp.yml"), []byte(configContent), 0o600))

	t.Run("extra candidates and width apply", func(t *testing.T) {
		output, err := runApp(t, "complete", "--", "just", "--cho")

		require.NoError(t, err)
		assert.Equal(t, "--choose        Select a recipe to run interactively\n", output)
	})

	t.Run("recipes disabled", func(t *testing.T) {
		output, err := runApp(t, "complete", "--format", "plain", "--", "just", "bu")

		require.NoError(t, err)
		assert.Empty(t, output)
	})

	t.Run("command line width wins over config", func(t *testing.T) {
		output, err := runApp(t, "complete", "--width", "10", "--", "just", "--dump")

		require.NoError(t, err)
		assert.Equal(t, "--dump    Print entire justfile\n", output)
	})
}

func TestCompleteBrokenConfigIsSilent(t *testing.T) {
	dir := setupProject(t, &stubExecutor{summary: "build"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".justcomp.yml"), []byte("display: [broken"), 0o600))

	output, err := runApp(t, "complete", "--format", "plain", "--", "just", "--dr")

	require.NoError(t, err)
	assert.Equal(t, "--dry-run\n", output)
}

func TestCompleteWithoutProject(t *testing.T) {
	setupNoProject(t)

	output, err := runApp(t, "complete", "--format", "plain", "--", "just", "--ed")

	require.NoError(t, err)
	assert.Equal(t, "--edit\n", output)
}

func TestCompleteIdempotent(t *testing.T) {
	setupProject(t, &stubExecutor{summary: "build test"})

	first, err1 := runApp(t, "complete", "--", "just")
	second, err2 := runApp(t, "complete", "--", "just")

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justcomp/justcomp/internal/config"
)

func setupInitDir(t *testing.T, withJustfile bool) string {
	t.Helper()

	dir := t.TempDir()
	if withJustfile {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "justfile"), []byte("default:\n\techo hi\n"), 0o600))
	}

	origGetwd := osGetwd
	osGetwd = func() (string, error) { return dir, nil }
	t.Cleanup(func() { osGetwd = origGetwd })

	return dir
}

func TestInitCreatesConfig(t *testing.T) {
	dir := setupInitDir(t, true)

	output, err := runApp(t, "init")

	require.NoError(t, err)
	configPath := filepath.Join(dir, config.ConfigFileName)
	assert.Contains(t, output, "Configuration file created: "+configPath)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "column_width: 14")
	assert.Contains(t, string(content), "recipes: true")

	// The template must load cleanly as configuration.
	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Display.ColumnWidth)
	assert.True(t, cfg.RecipesEnabled())
	assert.True(t, cfg.VariablesEnabled())
}

func TestInitCreatesConfigNextToJustfile(t *testing.T) {
	root := setupInitDir(t, true)

	// Run from a nested directory; the file still lands next to the justfile.
	nested := filepath.Join(root, "sub", "dir")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	osGetwd = func() (string, error) { return nested, nil }

	_, err := runApp(t, "init")

	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(root, config.ConfigFileName))
	assert.NoError(t, statErr)
}

func TestInitWithoutJustfile(t *testing.T) {
	setupInitDir(t, false)

	_, err := runApp(t, "init")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no justfile found")
}

func TestInitRefusesToOverwrite(t *testing.T) {
	dir := setupInitDir(t, true)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("version: \"1.0\"\n"), 0o600))

	_, err := runApp(t, "init")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file already exists")
}

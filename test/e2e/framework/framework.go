package framework

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const (
	dirPerm  = 0755
	filePerm = 0600
)

type TestEnvironment struct {
	t              *testing.T
	tmpDir         string
	justcompBinary string
}

func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tmpDir := t.TempDir()
	env := &TestEnvironment{
		t:      t,
		tmpDir: tmpDir,
	}

	env.buildJustcomp()

	return env
}

func (e *TestEnvironment) buildJustcomp() {
	e.t.Helper()

	binary := filepath.Join(e.tmpDir, "justcomp")
	if prebuilt := os.Getenv("JUSTCOMP_E2E_BINARY"); prebuilt != "" {
		binary = prebuilt
		if _, err := os.Stat(binary); err != nil {
			e.t.Fatalf("Specified justcomp binary not found: %s", binary)
		}
	} else {
		projectRoot := e.findProjectRoot()
		cmd := exec.Command("go", "build", "-o", binary, "./cmd/justcomp")
		cmd.Dir = projectRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			e.t.Fatalf("Failed to build justcomp binary: %v\nOutput: %s", err, output)
		}
	}

	binary = filepath.Clean(binary)
	if !filepath.IsAbs(binary) {
		absPath, err := filepath.Abs(binary)
		if err != nil {
			e.t.Fatalf("Failed to get absolute path for binary: %v", err)
		}
		binary = absPath
	}

	e.justcompBinary = binary
}

func (e *TestEnvironment) findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		e.t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			e.t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}

// CreateTestProject creates a directory containing a justfile with a couple
// of recipes and variables, the shape most completion queries run against.
func (e *TestEnvironment) CreateTestProject(name string) *TestProject {
	e.t.Helper()

	projectDir := filepath.Join(e.tmpDir, name)
	if err := os.MkdirAll(projectDir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create project directory: %v", err)
	}

	justfile := `version := "1.0"

build:
	@echo building

test:
	@echo testing
`
	e.writeFile(filepath.Join(projectDir, "justfile"), justfile)

	return &TestProject{
		env:  e,
		path: projectDir,
	}
}

// CreateEmptyDir creates a directory with no justfile in it.
func (e *TestEnvironment) CreateEmptyDir(name string) *TestProject {
	e.t.Helper()

	dir := filepath.Join(e.tmpDir, name)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory: %v", err)
	}

	return &TestProject{
		env:  e,
		path: dir,
	}
}

func (e *TestEnvironment) writeFile(path, content string) {
	e.t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func (e *TestEnvironment) RunJustcomp(args ...string) (string, error) {
	for _, arg := range args {
		if err := validateArg(arg); err != nil {
			return "", fmt.Errorf("invalid argument: %w", err)
		}
	}

	cmd := createSafeCommand(e.justcompBinary, args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (e *TestEnvironment) TmpDir() string {
	return e.tmpDir
}

type TestProject struct {
	env  *TestEnvironment
	path string
}

func (p *TestProject) RunJustcomp(args ...string) (string, error) {
	for _, arg := range args {
		if err := validateArg(arg); err != nil {
			return "", fmt.Errorf("invalid argument: %w", err)
		}
	}

	cmd := createSafeCommand(p.env.justcompBinary, args...)
	cmd.Dir = p.path
	cmd.Env = append(os.Environ(), "HOME="+p.env.tmpDir)

	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (p *TestProject) Path() string {
	return p.path
}

func (p *TestProject) WriteConfig(content string) {
	configPath := filepath.Join(p.path, ".justcomp.yml")
	p.env.writeFile(configPath, content)
}

func (p *TestProject) WriteJustfile(content string) {
	p.env.writeFile(filepath.Join(p.path, "justfile"), content)
}

func (p *TestProject) HasFile(path string) bool {
	fullPath := filepath.Join(p.path, path)
	_, err := os.Stat(fullPath)
	return err == nil
}

func (p *TestProject) ReadFile(path string) string {
	fullPath := filepath.Join(p.path, path)
	content, err := os.ReadFile(fullPath)
	if err != nil {
		p.env.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// validateArg checks if an argument is safe to pass to exec.Command
func validateArg(arg string) error {
	if arg == "" {
		return nil
	}

	// Check for shell metacharacters that could be dangerous
	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\n", "\r"}
	for _, char := range dangerousChars {
		if strings.Contains(arg, char) {
			return fmt.Errorf("argument contains potentially dangerous character: %s", char)
		}
	}

	return nil
}

// createSafeCommand creates an exec.Cmd with a validated binary path
func createSafeCommand(binary string, args ...string) *exec.Cmd {
	// The binary path has already been validated during initialization
	return exec.Command(binary, args...)
}

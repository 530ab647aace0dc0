package justfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Names lists the file names just recognizes as a justfile, in the order
// they are searched.
var Names = []string{"justfile", "Justfile", ".justfile"}

// Project is a directory tree governed by a justfile.
type Project struct {
	dir  string // directory containing the justfile
	path string // absolute path of the justfile itself
}

// Discover walks upward from dir looking for a justfile, the same search
// just performs when invoked without --justfile.
func Discover(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	for current := abs; ; current = filepath.Dir(current) {
		for _, name := range Names {
			candidate := filepath.Join(current, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return &Project{dir: current, path: candidate}, nil
			}
		}

		if parent := filepath.Dir(current); parent == current {
			return nil, fmt.Errorf("no justfile found in %s or any parent directory", abs)
		}
	}
}

// Dir returns the directory containing the justfile.
func (p *Project) Dir() string {
	return p.dir
}

// Path returns the absolute path of the justfile.
func (p *Project) Path() string {
	return p.path
}

package justfile

import (
	"strings"

	"github.com/justcomp/justcomp/internal/command"
)

// Source answers name queries by shelling out to just. Every query degrades
// to an empty list on failure: completion output is a protocol channel and
// must stay silent when just is missing or the justfile is broken.
type Source struct {
	project  *Project
	executor command.Executor
}

// NewSource creates a Source for the given project. A nil project queries
// just with its own upward search instead of a pinned --justfile.
func NewSource(project *Project, executor command.Executor) *Source {
	return &Source{project: project, executor: executor}
}

// Recipes returns the recipe names defined by the justfile.
func (s *Source) Recipes() []string {
	return s.names(command.JustSummary(s.justfilePath()))
}

// Variables returns the variable names defined by the justfile.
func (s *Source) Variables() []string {
	return s.names(command.JustVariables(s.justfilePath()))
}

func (s *Source) justfilePath() string {
	if s.project == nil {
		return ""
	}
	return s.project.Path()
}

func (s *Source) names(cmd command.Command) []string {
	if s.executor == nil {
		return nil
	}

	result, err := s.executor.Execute([]command.Command{cmd})
	if err != nil || len(result.Results) == 0 {
		return nil
	}

	first := result.Results[0]
	if first.Error != nil {
		return nil
	}

	return strings.Fields(first.Output)
}

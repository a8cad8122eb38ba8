package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the measurement file name looked up inside a project directory.
const ProjectFile = "body.yaml"

// Load reads a raw measurement record from a YAML file.
func Load(path string) (*RawInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading measurement file: %w", err)
	}

	var raw RawInput
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing measurement YAML: %w", err)
	}

	return &raw, nil
}

// LoadProject loads the measurement record from a project directory.
// It looks for body.yaml in the given directory.
func LoadProject(projectDir string) (*RawInput, error) {
	return Load(ProjectPath(projectDir))
}

// ProjectPath returns the measurement file path for a project directory.
func ProjectPath(projectDir string) string {
	return filepath.Join(projectDir, ProjectFile)
}

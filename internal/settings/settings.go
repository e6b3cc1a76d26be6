// Package settings holds user-level defaults applied when creating new
// projects. Stored as YAML in the user config directory, separate from
// the per-project record which belongs to the project root.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Settings pre-fill the prompts of 'glkit new'. Zero values fall back
// to the built-in defaults.
type Settings struct {
	Compiler string   `yaml:"compiler,omitempty"`
	Standard string   `yaml:"cppStandard,omitempty"`
	Libs     []string `yaml:"libs,omitempty"`
}

// Built-in defaults.
const (
	DefaultCompiler = "g++"
	DefaultStandard = "c++17"
)

// Dir returns the glkit user config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "glkit"), nil
}

// Path returns the settings file path for the given directory.
func Path(dir string) string {
	return filepath.Join(dir, fileName)
}

// Load reads settings from dir. A missing file is not an error: the
// built-in defaults apply.
func Load(dir string) (*Settings, error) {
	s := &Settings{Compiler: DefaultCompiler, Standard: DefaultStandard}
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.Compiler == "" {
		s.Compiler = DefaultCompiler
	}
	if s.Standard == "" {
		s.Standard = DefaultStandard
	}
	return s, nil
}

// Save writes settings to dir, creating it if needed.
func (s *Settings) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

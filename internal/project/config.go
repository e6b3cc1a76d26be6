package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the hidden record at the project root.
const ConfigFileName = ".glkit.json"

// ErrNotFound reports that the project has no saved configuration,
// i.e. initialization has not run in this directory.
var ErrNotFound = errors.New("project config not found")

// Config is the durable per-project record produced by 'glkit new' and
// read by every later build/run. It is never mutated in place:
// re-initializing a project overwrites it wholesale.
type Config struct {
	Compiler   string   `json:"compiler"`
	Standard   string   `json:"cppStandard"`
	Libs       []string `json:"libs"`
	OutputName string   `json:"outputName"`
}

// ConfigPath returns the config file path for a project root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}

// Load reads the project config. Returns ErrNotFound when the record
// is absent; every successful load yields a complete record.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse project config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config, overwriting any existing record.
func Save(root string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal project config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("failed to write project config: %w", err)
	}
	return nil
}

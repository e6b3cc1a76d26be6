// Package editor writes the VS Code integration files derived from a
// project's configuration. They are downstream artifacts only: nothing
// in the build pipeline reads them back.
package editor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const vscodeDir = ".vscode"

type task struct {
	Label          string    `json:"label"`
	Type           string    `json:"type"`
	Command        string    `json:"command"`
	Group          taskGroup `json:"group"`
	ProblemMatcher []string  `json:"problemMatcher"`
}

type taskGroup struct {
	Kind      string `json:"kind"`
	IsDefault bool   `json:"isDefault"`
}

type tasksFile struct {
	Version string `json:"version"`
	Tasks   []task `json:"tasks"`
}

type cppConfiguration struct {
	Name         string   `json:"name"`
	IncludePath  []string `json:"includePath"`
	CompilerPath string   `json:"compilerPath"`
	CStandard    string   `json:"cStandard"`
	CppStandard  string   `json:"cppStandard"`
}

type cppPropertiesFile struct {
	Version        int                `json:"version"`
	Configurations []cppConfiguration `json:"configurations"`
}

// WriteAll generates .vscode/tasks.json (a build task wrapping the
// composed command) and .vscode/c_cpp_properties.json (IntelliSense
// configuration) under the project root.
func WriteAll(root, compiler, standard, command string) error {
	tasks := tasksFile{
		Version: "2.0.0",
		Tasks: []task{{
			Label:          "glkit: build",
			Type:           "shell",
			Command:        command,
			Group:          taskGroup{Kind: "build", IsDefault: true},
			ProblemMatcher: []string{"$gcc"},
		}},
	}
	if err := writeJSON(filepath.Join(root, vscodeDir, "tasks.json"), tasks); err != nil {
		return err
	}

	props := cppPropertiesFile{
		Version: 4,
		Configurations: []cppConfiguration{{
			Name:         "glkit",
			IncludePath:  []string{"${workspaceFolder}/include", "${workspaceFolder}/src"},
			CompilerPath: compiler,
			CStandard:    "c17",
			CppStandard:  standard,
		}},
	}
	return writeJSON(filepath.Join(root, vscodeDir, "c_cpp_properties.json"), props)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

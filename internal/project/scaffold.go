package project

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"glkit/internal/catalog"
)

//go:embed templates
var templates embed.FS

var mainTmpl = template.Must(template.ParseFS(templates, "templates/main.cpp.tmpl"))

// Dirs are the directories every project gets.
var Dirs = []string{"src", "include", "lib", ".vscode"}

type mainData struct {
	Name       string
	HasGLFW    bool
	HasGLAD    bool
	HasGLEW    bool
	HasGLM     bool
	HasSTB     bool
	HasTinyObj bool
}

// Scaffold creates the directory skeleton and starter files for a new
// project: src/ include/ lib/ .vscode/, a main.cpp tailored to the
// resolved selection, and a .gitignore. Existing files are not
// overwritten except by re-initialization of the whole project.
func Scaffold(root, name string, libs []string) error {
	for _, dir := range Dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	data := mainData{
		Name:       name,
		HasGLFW:    slices.Contains(libs, catalog.GLFW),
		HasGLAD:    slices.Contains(libs, catalog.GLAD),
		HasGLEW:    slices.Contains(libs, catalog.GLEW),
		HasGLM:     slices.Contains(libs, catalog.GLM),
		HasSTB:     slices.Contains(libs, catalog.STB),
		HasTinyObj: slices.Contains(libs, catalog.TinyObj),
	}
	var buf bytes.Buffer
	if err := mainTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render main.cpp: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "main.cpp"), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write main.cpp: %w", err)
	}

	gitignore, err := templates.ReadFile("templates/gitignore")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), gitignore, 0644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return nil
}

package internal

import (
	"strings"
	"testing"

	"glkit/internal/project"
)

func TestCheckInitAllowed(t *testing.T) {
	empty := t.TempDir()
	if err := checkInitAllowed(empty, false); err != nil {
		t.Errorf("fresh directory: %v, want nil", err)
	}

	initialized := t.TempDir()
	cfg := &project.Config{Compiler: "g++", Standard: "c++17", OutputName: "a"}
	if err := project.Save(initialized, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	err := checkInitAllowed(initialized, false)
	if err == nil {
		t.Fatal("existing project without force should be refused")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("err = %v, want a pointer to --force", err)
	}

	if err := checkInitAllowed(initialized, true); err != nil {
		t.Errorf("existing project with force: %v, want nil", err)
	}
}

func TestForceReinitOverwritesWholesale(t *testing.T) {
	root := t.TempDir()
	first := &project.Config{Compiler: "g++", Standard: "c++17", Libs: []string{"glew"}, OutputName: "a"}
	if err := project.Save(root, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := checkInitAllowed(root, true); err != nil {
		t.Fatalf("checkInitAllowed: %v", err)
	}

	second := &project.Config{Compiler: "clang++", Standard: "c++20", Libs: []string{"glfw"}, OutputName: "b"}
	if err := project.Save(root, second); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := project.Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Compiler != "clang++" || len(got.Libs) != 1 || got.Libs[0] != "glfw" {
		t.Errorf("reloaded config = %+v, want the second record with no merge", got)
	}
}

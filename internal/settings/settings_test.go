package settings

import (
	"os"
	"reflect"
	"testing"
)

func TestLoadMissingFileDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Compiler != DefaultCompiler {
		t.Errorf("Compiler = %q, want %q", s.Compiler, DefaultCompiler)
	}
	if s.Standard != DefaultStandard {
		t.Errorf("Standard = %q, want %q", s.Standard, DefaultStandard)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := &Settings{
		Compiler: "clang++",
		Standard: "c++20",
		Libs:     []string{"glfw", "glm"},
	}
	if err := want.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadFillsMissingFields(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte("libs: [glad]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Compiler != DefaultCompiler || s.Standard != DefaultStandard {
		t.Errorf("partial settings = %+v, want defaults filled in", s)
	}
	if !reflect.DeepEqual(s.Libs, []string{"glad"}) {
		t.Errorf("Libs = %v, want [glad]", s.Libs)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte("compiler: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("Load on malformed settings should fail")
	}
}

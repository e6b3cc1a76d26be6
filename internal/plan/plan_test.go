package plan

import (
	"slices"
	"strings"
	"testing"

	"glkit/internal/catalog"
)

func countOccurrences(args []string, flag string) int {
	n := 0
	for _, a := range args {
		if a == flag {
			n++
		}
	}
	return n
}

func TestComposeGLFWPosix(t *testing.T) {
	p := Compose(Input{
		Compiler: "g++",
		Standard: "c++17",
		Libs:     []string{catalog.GLFW},
		Platform: catalog.Posix,
		Sources:  []string{"src/main.cpp"},
		Output:   "demo",
	})

	if !slices.Contains(p.LinkerFlags, "-lglfw") {
		t.Errorf("linker flags = %v, want -lglfw present", p.LinkerFlags)
	}
	for _, f := range []string{"-lpthread", "-ldl"} {
		if got := countOccurrences(p.Args, f); got != 1 {
			t.Errorf("flag %s appears %d times, want exactly 1", f, got)
		}
	}
	want := "g++ -std=c++17 src/main.cpp -Iinclude -Llib -lglfw -lpthread -ldl -o demo"
	if p.Command != want {
		t.Errorf("Command = %q, want %q", p.Command, want)
	}
}

func TestComposeDeterministic(t *testing.T) {
	in := Input{
		Compiler: "clang++",
		Standard: "c++20",
		Libs:     []string{catalog.GLAD, catalog.GLFW, catalog.GLM},
		Platform: catalog.Posix,
		Sources:  []string{"src/main.cpp", "src/glad.c"},
		Output:   "app",
	}
	first := Compose(in)
	second := Compose(in)
	if first.Command != second.Command {
		t.Errorf("Compose not idempotent:\n%q\n%q", first.Command, second.Command)
	}
}

func TestComposeCatalogOrderNotSelectionOrder(t *testing.T) {
	base := Input{
		Compiler: "g++",
		Standard: "c++17",
		Platform: catalog.Posix,
		Sources:  []string{"src/main.cpp"},
		Output:   "app",
	}
	a := base
	a.Libs = []string{catalog.OpenGL, catalog.GLFW}
	b := base
	b.Libs = []string{catalog.GLFW, catalog.OpenGL}

	if got, want := Compose(a).Command, Compose(b).Command; got != want {
		t.Errorf("selection order leaked into command:\n%q\n%q", got, want)
	}
}

func TestComposeSharedFlagEmittedOnce(t *testing.T) {
	// glfw and glad both imply -ldl on posix.
	p := Compose(Input{
		Compiler: "g++",
		Standard: "c++17",
		Libs:     []string{catalog.GLFW, catalog.GLAD},
		Platform: catalog.Posix,
		Sources:  []string{"src/main.cpp", "src/glad.c"},
		Output:   "app",
	})
	if got := countOccurrences(p.Args, "-ldl"); got != 1 {
		t.Errorf("-ldl appears %d times, want exactly 1", got)
	}
}

func TestComposeFlagOrdering(t *testing.T) {
	p := Compose(Input{
		Compiler: "g++",
		Standard: "c++17",
		Libs:     []string{catalog.GLFW, catalog.OpenGL},
		Platform: catalog.Posix,
		Sources:  []string{"src/a.cpp", "src/b.cpp"},
		Output:   "app",
	})
	idx := func(flag string) int { return slices.Index(p.Args, flag) }

	order := []string{"-std=c++17", "src/a.cpp", "src/b.cpp", "-Iinclude", "-Llib", "-lglfw", "-o"}
	for i := 1; i < len(order); i++ {
		if idx(order[i-1]) >= idx(order[i]) {
			t.Fatalf("flag %s must precede %s in %v", order[i-1], order[i], p.Args)
		}
	}
	if p.Args[0] != "g++" {
		t.Errorf("Args[0] = %q, want compiler first", p.Args[0])
	}
	if p.Args[len(p.Args)-1] != "app" {
		t.Errorf("Args ends with %q, want output name last", p.Args[len(p.Args)-1])
	}
}

func TestComposeWindows(t *testing.T) {
	p := Compose(Input{
		Compiler: "g++",
		Standard: "c++17",
		Libs:     []string{catalog.GLFW, catalog.OpenGL},
		Platform: catalog.Windows,
		Sources:  []string{"src/main.cpp"},
		Output:   "demo",
	})
	if p.Output != "demo.exe" {
		t.Errorf("Output = %q, want demo.exe", p.Output)
	}
	if slices.Contains(p.Args, "-lGL") || slices.Contains(p.Args, "-lpthread") {
		t.Errorf("posix flags leaked into windows plan: %v", p.Args)
	}
	if !slices.Contains(p.Args, "-lopengl32") {
		t.Errorf("Args = %v, want -lopengl32 present", p.Args)
	}
}

func TestComposeUnknownLibContributesNothing(t *testing.T) {
	with := Compose(Input{
		Compiler: "g++",
		Standard: "c++17",
		Libs:     []string{catalog.GLM, "vulkan"},
		Platform: catalog.Posix,
		Sources:  []string{"src/main.cpp"},
		Output:   "app",
	})
	without := Compose(Input{
		Compiler: "g++",
		Standard: "c++17",
		Libs:     []string{catalog.GLM},
		Platform: catalog.Posix,
		Sources:  []string{"src/main.cpp"},
		Output:   "app",
	})
	if with.Command != without.Command {
		t.Errorf("unknown id changed the command:\n%q\n%q", with.Command, without.Command)
	}
}

func TestCommandIsArgsJoined(t *testing.T) {
	p := Compose(Input{
		Compiler: "g++",
		Standard: "c++17",
		Libs:     []string{catalog.GLFW},
		Platform: catalog.Posix,
		Sources:  []string{"src/main.cpp"},
		Output:   "app",
	})
	if p.Command != strings.Join(p.Args, " ") {
		t.Errorf("Command %q is not Args joined by spaces", p.Command)
	}
}

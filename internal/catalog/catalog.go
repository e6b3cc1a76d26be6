package catalog

// Platform selects which flag set of a catalog entry applies. Exactly
// one platform is active per resolution; flags never mix across them.
type Platform string

const (
	Windows Platform = "windows"
	Posix   Platform = "posix"
)

// Current maps a GOOS value to its Platform.
func Current(goos string) Platform {
	if goos == "windows" {
		return Windows
	}
	return Posix
}

// Supported library identifiers. Tokens outside this set pass through
// the pipeline inertly: they contribute no flags and no checks.
const (
	GLFW    = "glfw"
	GLAD    = "glad"
	GLEW    = "glew"
	GLM     = "glm"
	STB     = "stb"
	TinyObj = "tinyobj"
	OpenGL  = "opengl"
)

// Conflict marks two libraries as mutually exclusive. The winner is
// fixed here, never by input order.
type Conflict struct {
	Winner string
	Loser  string
	Reason string
}

// Entry describes one supported library: how to link it, what it needs
// on disk, and whether it ships a generated translation unit.
type Entry struct {
	ID      string
	Summary string

	LinkerFlags map[Platform][]string
	SystemFlags map[Platform][]string

	// Artifacts are project-root-relative paths (slash-separated) that
	// must exist for the library to compile. Checked as a preflight,
	// advisory only.
	Artifacts []string

	// GeneratedSource names a translation unit under src/ that the
	// library ships as generated code (e.g. glad's loader). Picked up
	// by source collection when present on disk.
	GeneratedSource string
}

// entries holds the catalog in definition order. Flag emission keys
// off this order so the link line is reproducible no matter how the
// user spelled their selection.
var entries = []Entry{
	{
		ID:      GLFW,
		Summary: "windowing, OpenGL context and input",
		LinkerFlags: map[Platform][]string{
			Posix:   {"-lglfw"},
			Windows: {"-lglfw3"},
		},
		SystemFlags: map[Platform][]string{
			Posix:   {"-lpthread", "-ldl"},
			Windows: {"-lgdi32", "-luser32", "-lshell32"},
		},
		Artifacts: []string{"include/GLFW/glfw3.h"},
	},
	{
		ID:      GLAD,
		Summary: "OpenGL function loader (generated)",
		SystemFlags: map[Platform][]string{
			Posix: {"-ldl"},
		},
		Artifacts: []string{
			"include/glad/glad.h",
			"include/KHR/khrplatform.h",
		},
		GeneratedSource: "glad.c",
	},
	{
		ID:      GLEW,
		Summary: "OpenGL function loader (prebuilt)",
		LinkerFlags: map[Platform][]string{
			Posix:   {"-lGLEW"},
			Windows: {"-lglew32"},
		},
		Artifacts: []string{"include/GL/glew.h"},
	},
	{
		ID:        GLM,
		Summary:   "header-only linear algebra",
		Artifacts: []string{"include/glm/glm.hpp"},
	},
	{
		ID:        STB,
		Summary:   "image loading (stb_image)",
		Artifacts: []string{"include/stb_image.h"},
	},
	{
		ID:        TinyObj,
		Summary:   "OBJ model loading (tinyobjloader)",
		Artifacts: []string{"include/tiny_obj_loader.h"},
	},
	{
		ID:      OpenGL,
		Summary: "raw OpenGL linkage",
		SystemFlags: map[Platform][]string{
			Posix:   {"-lGL"},
			Windows: {"-lopengl32"},
		},
	},
}

// conflicts lists the mutual-exclusion rules. Resolution loops to a
// fixed point, so growing this list needs no new machinery.
var conflicts = []Conflict{
	{Winner: GLAD, Loser: GLEW, Reason: "glad takes precedence as the OpenGL loader"},
}

var byID = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return m
}()

// Lookup returns the entry for id. A false result is not an error:
// unrecognized ids are carried through resolution untouched.
func Lookup(id string) (Entry, bool) {
	e, ok := byID[id]
	return e, ok
}

// Entries returns the catalog in definition order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// IDs returns all supported library ids in definition order.
func IDs() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

// Conflicts returns the mutual-exclusion rules.
func Conflicts() []Conflict {
	out := make([]Conflict, len(conflicts))
	copy(out, conflicts)
	return out
}

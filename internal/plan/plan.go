// Package plan composes the native build invocation. Composition is a
// pure function of its input: platform and working directory come in
// explicitly, nothing is read from the environment, and identical
// inputs always produce byte-identical command strings.
package plan

import (
	"strings"

	"glkit/internal/catalog"
)

// Default search directories, relative to the project root.
const (
	IncludeDir = "include"
	LibDir     = "lib"
)

// Input carries everything Compose needs.
type Input struct {
	Compiler string
	Standard string
	Libs     []string
	Platform catalog.Platform
	Sources  []string
	Output   string
}

// Plan is the fully composed invocation. Args holds the flags in their
// final order; Command is Args joined by single spaces. The order is a
// correctness requirement: native linkers resolve static-library
// symbols left to right.
type Plan struct {
	Compiler    string
	Standard    string
	Sources     []string
	IncludeDirs []string
	LibDirs     []string
	LinkerFlags []string
	SystemFlags []string
	Output      string
	Args        []string
	Command     string
}

// Compose builds the ordered flag list: standard flag, source files,
// include path, library search path, linker flags, system flags,
// output flag. Linker and system flags are emitted in catalog
// definition order — not selection order — and each flag at most once,
// even when several libraries imply it.
func Compose(in Input) Plan {
	selected := make(map[string]bool, len(in.Libs))
	for _, id := range in.Libs {
		selected[id] = true
	}

	seen := make(map[string]bool)
	var linker, system []string
	for _, e := range catalog.Entries() {
		if !selected[e.ID] {
			continue
		}
		for _, f := range e.LinkerFlags[in.Platform] {
			if !seen[f] {
				seen[f] = true
				linker = append(linker, f)
			}
		}
	}
	for _, e := range catalog.Entries() {
		if !selected[e.ID] {
			continue
		}
		for _, f := range e.SystemFlags[in.Platform] {
			if !seen[f] {
				seen[f] = true
				system = append(system, f)
			}
		}
	}

	output := in.Output
	if in.Platform == catalog.Windows && !strings.HasSuffix(output, ".exe") {
		output += ".exe"
	}

	args := make([]string, 0, 8+len(in.Sources)+len(linker)+len(system))
	args = append(args, in.Compiler, "-std="+in.Standard)
	args = append(args, in.Sources...)
	args = append(args, "-I"+IncludeDir, "-L"+LibDir)
	args = append(args, linker...)
	args = append(args, system...)
	args = append(args, "-o", output)

	return Plan{
		Compiler:    in.Compiler,
		Standard:    in.Standard,
		Sources:     in.Sources,
		IncludeDirs: []string{IncludeDir},
		LibDirs:     []string{LibDir},
		LinkerFlags: linker,
		SystemFlags: system,
		Output:      output,
		Args:        args,
		Command:     strings.Join(args, " "),
	}
}

// Package depcheck verifies that the filesystem artifacts a selected
// library needs (headers, prebuilt libs) are present under the project
// root. It is a best-effort preflight: every finding is advisory, the
// selection is never altered, and composition proceeds regardless —
// the native compiler is the final authority.
package depcheck

import (
	"fmt"
	"os"
	"path/filepath"

	"glkit/internal/catalog"
)

// Warning reports one required artifact missing from the project tree.
type Warning struct {
	Lib  string
	Path string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: missing %s", w.Lib, w.Path)
}

// Check stats every required artifact of every library in the resolved
// selection under root. Each missing artifact yields exactly one
// warning. Unrecognized ids are skipped: they have no catalog entry
// and therefore nothing to check.
func Check(root string, libs []string) []Warning {
	var warns []Warning
	for _, id := range libs {
		entry, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		for _, rel := range entry.Artifacts {
			if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
				warns = append(warns, Warning{Lib: id, Path: rel})
			}
		}
	}
	return warns
}

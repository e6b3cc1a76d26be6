// Package sources collects the translation units handed to the native
// compiler.
package sources

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"glkit/internal/catalog"
)

// SrcDir is the project-root-relative source directory.
const SrcDir = "src"

var extensions = map[string]bool{
	".cpp": true,
	".cc":  true,
	".cxx": true,
	".c":   true,
}

// Collect returns the compilable files of the project as root-relative
// slash paths. Files found in src/ come first, in directory-listing
// order; generated translation units mandated by the selection (and
// present on disk) are appended afterwards if not already listed. The
// ordering is stable and downstream output keys off it.
func Collect(root string, libs []string) ([]string, error) {
	dirents, err := os.ReadDir(filepath.Join(root, SrcDir))
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}
	var files []string
	for _, d := range dirents {
		if d.IsDir() || !extensions[strings.ToLower(path.Ext(d.Name()))] {
			continue
		}
		files = append(files, path.Join(SrcDir, d.Name()))
	}

	// Generated sources are appended in catalog-definition order so the
	// result does not depend on how the selection was spelled.
	for _, entry := range catalog.Entries() {
		if entry.GeneratedSource == "" || !slices.Contains(libs, entry.ID) {
			continue
		}
		rel := path.Join(SrcDir, entry.GeneratedSource)
		if slices.Contains(files, rel) {
			continue
		}
		if _, err := os.Stat(filepath.Join(root, SrcDir, entry.GeneratedSource)); err == nil {
			files = append(files, rel)
		}
	}
	return files, nil
}

package models

import (
	"path/filepath"
)

// ComponentEntry is a read-only view over one matched file path.
type ComponentEntry struct {
	// Path is the absolute path of the matched file.
	Path string
	// ComponentName is the name of the directory containing the file.
	ComponentName string
	// ImportSpecifier is the last two path segments before the filename,
	// prefixed with "./", always forward-slashed.
	ImportSpecifier string
}

// NewComponentEntry derives a ComponentEntry from a matched path. The
// derivation is pure string work on the path shape .../<parent>/<file>;
// a path with fewer segments still derives without crashing, it just
// yields a degenerate result.
func NewComponentEntry(path string) ComponentEntry {
	parentDir := filepath.Dir(path)
	grandDir := filepath.Dir(parentDir)

	parent := filepath.Base(parentDir)
	grand := filepath.Base(grandDir)

	return ComponentEntry{
		Path:            path,
		ComponentName:   parent,
		ImportSpecifier: "./" + grand + "/" + parent,
	}
}

// NewComponentEntries derives entries for each path, preserving order.
func NewComponentEntries(paths []string) []ComponentEntry {
	entries := make([]ComponentEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, NewComponentEntry(p))
	}
	return entries
}

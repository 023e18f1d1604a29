package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
)

// Scan walks dir and returns the absolute paths of every file whose path,
// relative to dir and slash-normalized, matches the doublestar pattern.
// Directories are never matched. With recursive=false only the top level
// of dir is considered. The result is in lexicographic path order, so two
// scans of an unchanged tree return identical slices.
func Scan(dir string, recursive bool, pattern string) ([]string, error) {
	if recursive {
		return scanRecursive(dir, pattern)
	}
	return scanShallow(dir, pattern)
}

func scanRecursive(dir string, pattern string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	return matches, nil
}

func scanShallow(dir string, pattern string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	var matches []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}

	return matches, nil
}

// Package fs provides file system adapters for walking, resolving, hashing,
// and writing site files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"

	"go.trai.ch/press/internal/core/domain"
)

// skippedDirs are never walked: version control state and our own state dir.
var skippedDirs = map[string]bool{
	".git":              true,
	".jj":               true,
	domain.StateDirName: true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, skipping version control
// directories, the state directory, and anything matching the ignore
// patterns. Yielded paths start with root, as filepath.WalkDir produces them.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err
			case d.IsDir() && path != root && (skippedDirs[d.Name()] || matchesIgnore(d.Name(), ignores)):
				return filepath.SkipDir
			case d.IsDir():
				return nil
			case matchesIgnore(d.Name(), ignores):
				return nil
			case !yield(path):
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// matchesIgnore checks a base name against the ignore patterns.
func matchesIgnore(name string, ignores []string) bool {
	return slices.ContainsFunc(ignores, func(pattern string) bool {
		matched, _ := filepath.Match(pattern, name)
		return matched
	})
}

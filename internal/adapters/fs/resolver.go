package fs

import (
	"path/filepath"
	"slices"

	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver expands listing item patterns into concrete source paths.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs expands the glob patterns against root and returns the union
// of matches as sorted root-relative paths. A pattern matching nothing
// contributes nothing, so a listing over an empty directory is just empty.
func (r *Resolver) ResolveInputs(patterns []string, root string) ([]string, error) {
	var paths []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob pattern"), "pattern", pattern)
		}
		for _, match := range matches {
			rel, err := filepath.Rel(root, match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to relativize match"), "path", match)
			}
			paths = append(paths, rel)
		}
	}

	slices.Sort(paths)
	return slices.Compact(paths), nil
}

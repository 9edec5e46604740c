package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".press"

	// StoreFileName is the name of the build info store file.
	StoreFileName = "state.json"

	// ManifestName is the name of the site manifest file.
	ManifestName = "press.yaml"

	// DefaultOutputDir is the output directory used when the manifest
	// doesn't name one.
	DefaultOutputDir = "public"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the build info store path under the given site root.
func DefaultStorePath(root string) string {
	return filepath.Join(root, StateDirName, StoreFileName)
}

// OutputDir returns the site's output directory under its root.
func (s *Site) OutputDir() string {
	out := s.Output
	if out == "" {
		out = DefaultOutputDir
	}
	return filepath.Join(s.Root, out)
}

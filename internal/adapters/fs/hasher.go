package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes the staleness hashes the renderer compares between runs.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeInputHash hashes everything a render unit reads: the unit's own
// definition plus the content of its dependencies and chain templates. Any
// change to either produces a different hash.
func (h *Hasher) ComputeInputHash(unit *domain.Unit, rootDir string) (string, error) {
	d := xxhash.New()

	writeEntry(d, unit.Name)
	for _, dep := range unit.Action.Dependencies {
		writeEntry(d, dep.String())
	}
	_, _ = d.Write(sep)
	for _, tmpl := range unit.Chain {
		writeEntry(d, tmpl.String())
	}
	_, _ = d.Write(sep)

	for _, input := range unit.Inputs() {
		if err := h.digestSource(d, filepath.Join(rootDir, input.String())); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", d.Sum64()), nil
}

// HashContent hashes rendered output content.
func (h *Hasher) HashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// ComputeFileHash computes the xxhash of one file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Paths come from the site manifest
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	d := xxhash.New()
	if _, err := io.Copy(d, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return d.Sum64(), nil
}

// sep separates digest entries so adjacent entries cannot run together.
var sep = []byte{0}

func writeEntry(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write(sep)
}

// digestSource feeds one source path into the digest. A path that is not on
// disk is retried as a glob pattern; a pattern without matches means the
// source is missing.
func (h *Hasher) digestSource(d *xxhash.Digest, path string) error {
	if _, err := os.Stat(path); err == nil {
		return h.digestTree(d, path)
	}

	matches, err := filepath.Glob(path)
	if err != nil || len(matches) == 0 {
		return zerr.With(zerr.New("source not found"), "path", path)
	}
	for _, match := range matches {
		if err := h.digestTree(d, match); err != nil {
			return err
		}
	}
	return nil
}

// digestTree feeds a file, or every file under a directory, into the digest.
func (h *Hasher) digestTree(d *xxhash.Digest, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	if !info.IsDir() {
		return h.digestFile(d, path)
	}
	for file := range h.walker.WalkFiles(path, nil) {
		if err := h.digestFile(d, file); err != nil {
			return err
		}
	}
	return nil
}

// digestFile feeds one file's path and content hash into the digest.
func (h *Hasher) digestFile(d *xxhash.Digest, path string) error {
	writeEntry(d, path)

	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}
	if err := binary.Write(d, binary.LittleEndian, sum); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

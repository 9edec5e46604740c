// Package cas persists content-addressed build state between runs.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// storeVersion is the on-disk format version. Bump it when the envelope
// changes shape.
const storeVersion = 1

// envelope is the on-disk form of the store.
type envelope struct {
	Version int                         `json:"version"`
	Pages   map[string]domain.BuildInfo `json:"pages"`
}

// Store keeps one BuildInfo per page in a single JSON file. Reads are served
// from memory; every Put rewrites the file.
type Store struct {
	path string

	mu    sync.RWMutex
	pages map[string]domain.BuildInfo
}

// NewStore opens the store at path, loading existing records. A missing or
// empty file is a valid empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		pages: make(map[string]domain.BuildInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the record for a page, or nil when the page has never been
// rendered.
func (s *Store) Get(pageName string) (*domain.BuildInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.pages[pageName]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put records a page render and persists the store.
func (s *Store) Put(info domain.BuildInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages[info.PageName] = info
	return s.save()
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path) //nolint:gosec // Path is derived from the site root
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return zerr.Wrap(err, "failed to read build info store")
	case len(data) == 0:
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return zerr.Wrap(err, "failed to unmarshal build info store")
	}
	if env.Version != storeVersion {
		err := zerr.New("unsupported build info store version")
		return zerr.With(err, "version", strconv.Itoa(env.Version))
	}
	if env.Pages != nil {
		s.pages = env.Pages
	}
	return nil
}

// save writes the whole store through a temp file so a crash mid-write never
// leaves a truncated store behind.
func (s *Store) save() error {
	data, err := json.MarshalIndent(envelope{Version: storeVersion, Pages: s.pages}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build info store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for build info store")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil { //nolint:gosec // Path is derived from the site root
		return zerr.Wrap(err, "failed to write build info store")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.Wrap(err, "failed to replace build info store")
	}
	return nil
}

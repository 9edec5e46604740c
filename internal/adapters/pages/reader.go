// Package pages reads source pages and their front matter.
package pages

import (
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PageReader = (*Reader)(nil)

// Reader loads pages below the site root and caches parsed results until
// they are invalidated. It is safe for concurrent use.
type Reader struct {
	root string

	mu    sync.RWMutex
	cache map[domain.PagePath]domain.Page
}

// NewReader creates a Reader rooted at the site directory.
func NewReader(root string) *Reader {
	return &Reader{
		root:  root,
		cache: make(map[domain.PagePath]domain.Page),
	}
}

// Read loads the page at the given source path, parsing its front matter.
func (r *Reader) Read(path domain.PagePath) (domain.Page, error) {
	r.mu.RLock()
	page, ok := r.cache[path]
	r.mu.RUnlock()
	if ok {
		return page, nil
	}

	data, err := os.ReadFile(filepath.Join(r.root, path.String())) //nolint:gosec // Paths come from the site manifest
	if err != nil {
		return domain.Page{}, zerr.With(zerr.Wrap(err, "failed to read page"), "path", path.String())
	}

	page, err = parsePage(path, string(data))
	if err != nil {
		return domain.Page{}, err
	}

	r.mu.Lock()
	r.cache[path] = page
	r.mu.Unlock()

	return page, nil
}

// Invalidate drops the cached entry for a source path, forcing the next Read
// to hit the disk again.
func (r *Reader) Invalidate(path domain.PagePath) {
	r.mu.Lock()
	delete(r.cache, path)
	r.mu.Unlock()
}

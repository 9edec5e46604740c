// Package tmpl renders template files with Go's text/template engine.
package tmpl

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TemplateEngine = (*Engine)(nil)

// Engine loads templates below the site root and caches parsed templates
// until they are invalidated. It is safe for concurrent use.
type Engine struct {
	root string

	mu    sync.RWMutex
	cache map[domain.PagePath]*template.Template
}

// NewEngine creates an Engine rooted at the site directory.
func NewEngine(root string) *Engine {
	return &Engine{
		root:  root,
		cache: make(map[domain.PagePath]*template.Template),
	}
}

// Render applies the template stored at the given source path to the context.
// Keys the template references but the context doesn't carry render as empty
// strings, so optional metadata stays optional.
func (e *Engine) Render(path domain.PagePath, ctx domain.Context) (string, error) {
	tpl, err := e.load(path)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, ctx); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to execute template"), "template", path.String())
	}
	return buf.String(), nil
}

// Invalidate drops the cached parse of the template at the given path.
func (e *Engine) Invalidate(path domain.PagePath) {
	e.mu.Lock()
	delete(e.cache, path)
	e.mu.Unlock()
}

func (e *Engine) load(path domain.PagePath) (*template.Template, error) {
	e.mu.RLock()
	tpl, ok := e.cache[path]
	e.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	data, err := os.ReadFile(filepath.Join(e.root, path.String())) //nolint:gosec // Paths come from the site manifest
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read template"), "template", path.String())
	}

	tpl, err = template.New(path.String()).Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse template"), "template", path.String())
	}

	e.mu.Lock()
	e.cache[path] = tpl
	e.mu.Unlock()

	return tpl, nil
}

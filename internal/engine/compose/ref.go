package compose

import (
	"context"

	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
)

var _ domain.Renderable = (*PageRef)(nil)

// PageRef is the leaf renderable: a reference to a single source page.
// It carries no state of its own. Loading and parsing happen in the page
// reader, url derivation in the url resolver.
type PageRef struct {
	path   domain.PagePath
	reader ports.PageReader
	urls   ports.URLResolver
}

// NewPageRef creates a renderable reference to the page at path.
func NewPageRef(path domain.PagePath, reader ports.PageReader, urls ports.URLResolver) *PageRef {
	return &PageRef{path: path, reader: reader, urls: urls}
}

// Path returns the wrapped source path.
func (r *PageRef) Path() domain.PagePath {
	return r.path
}

// Dependencies returns the single source path the page depends on.
func (r *PageRef) Dependencies() []domain.PagePath {
	return []domain.PagePath{r.path}
}

// URL derives the destination url from the source path.
func (r *PageRef) URL(context.Context) (string, error) {
	return r.urls.DestinationFor(r.path), nil
}

// Context loads the page and converts it to a template context.
func (r *PageRef) Context(context.Context) (domain.Context, error) {
	page, err := r.reader.Read(r.path)
	if err != nil {
		return nil, err
	}
	return page.Context(), nil
}

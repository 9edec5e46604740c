package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
)

var _ ports.URLResolver = (*Router)(nil)

// sourceExts are extensions that render to html.
var sourceExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// Router derives destination urls from source paths.
type Router struct{}

// NewRouter creates a new Router.
func NewRouter() *Router {
	return &Router{}
}

// DestinationFor returns the destination url for a source path. Markdown
// sources swap their extension for .html; anything else keeps its path.
func (r *Router) DestinationFor(path domain.PagePath) string {
	s := path.String()
	if ext := filepath.Ext(s); sourceExts[ext] {
		return strings.TrimSuffix(s, ext) + ".html"
	}
	return s
}

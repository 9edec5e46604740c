package domain

// Page is a source page as loaded from disk: its path, the metadata parsed
// from its front matter, and the raw body.
type Page struct {
	Path PagePath
	Meta map[string]string
	Body string
}

// Context converts the page into a template context. The body and source
// path are filled in under their well-known keys; metadata is overlaid with
// precedence, so front matter can shadow the generated values.
func (p *Page) Context() Context {
	generated := Context{
		KeyBody: p.Body,
		KeyPath: p.Path.String(),
	}
	return Union(Context(p.Meta), generated)
}

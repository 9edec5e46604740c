package domain

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Renderable is anything that can be rendered as a page: it knows the source
// files it depends on, the URL it ends up at, and the context templates are
// instantiated with. URL and Context are deferred; implementations may read
// files or compute values when called.
type Renderable interface {
	// Dependencies lists the source files this page is derived from.
	Dependencies() []PagePath

	// URL yields the page's destination URL.
	URL(ctx context.Context) (string, error)

	// Context produces the page's template context.
	Context(ctx context.Context) (Context, error)
}

// AsAction adapts a Renderable into a render Action. The renderable's URL
// becomes the destination and its context computation becomes the build.
func AsAction(r Renderable) Action {
	return Action{
		Dependencies: r.Dependencies(),
		Destination:  r.URL,
		Build:        r.Context,
	}
}

// Combined is the combination of two renderables into one page. The combined
// context is the left-biased union of both sub-contexts (a wins on conflict),
// computed concurrently. Without an explicit URL the combination lives at
// a's URL; with one, the explicit URL is overlaid onto the "url" context key
// last, so it wins over anything either side contributed.
type Combined struct {
	a, b   Renderable
	url    string
	hasURL bool
}

// CombineRenderables combines two renderables, keeping a's URL.
func CombineRenderables(a, b Renderable) *Combined {
	return &Combined{a: a, b: b}
}

// CombineWithURL combines two renderables at an explicitly chosen URL.
func CombineWithURL(url string, a, b Renderable) *Combined {
	return &Combined{a: a, b: b, url: url, hasURL: true}
}

// Dependencies returns a's dependencies followed by b's.
func (c *Combined) Dependencies() []PagePath {
	da, db := c.a.Dependencies(), c.b.Dependencies()
	deps := make([]PagePath, 0, len(da)+len(db))
	deps = append(deps, da...)
	deps = append(deps, db...)
	return deps
}

// URL yields the explicit URL when one was given, otherwise a's URL.
func (c *Combined) URL(ctx context.Context) (string, error) {
	if c.hasURL {
		return c.url, nil
	}
	return c.a.URL(ctx)
}

// Context computes both sub-contexts concurrently and merges them, a wins.
// An explicit URL is applied after the merge so it always ends up as the
// "url" value.
func (c *Combined) Context(ctx context.Context) (Context, error) {
	var ca, cb Context

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ca, err = c.a.Context(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cb, err = c.b.Context(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := Union(ca, cb)
	if c.hasURL {
		merged[KeyURL] = c.url
	}
	return merged, nil
}

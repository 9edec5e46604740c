package domain

import "context"

// DestinationFunc computes where a page's output goes. A nil DestinationFunc
// on an Action means the action has no destination of its own, which is valid
// for intermediate fragments that only contribute context.
type DestinationFunc func(ctx context.Context) (string, error)

// BuildFunc is the deferred part of a render action. It produces the context
// that templates are eventually instantiated with. Nothing is read or
// computed until the build runs, and running it again repeats the work.
type BuildFunc func(ctx context.Context) (Context, error)

// Action describes everything needed to render one page: the source files it
// depends on, where the output goes, and the deferred computation producing
// its template context.
type Action struct {
	// Dependencies lists the source files the page is derived from, in
	// order. Duplicates are permitted and preserved.
	Dependencies []PagePath

	// Destination yields the output URL. Nil means absent.
	Destination DestinationFunc

	// Build produces the page's context. Nil is treated as an empty context.
	Build BuildFunc
}

// StaticDestination returns a DestinationFunc that always yields url.
func StaticDestination(url string) DestinationFunc {
	return func(context.Context) (string, error) {
		return url, nil
	}
}

// BuildContext runs the action's deferred build. The zero Action is usable:
// a nil Build yields an empty context.
func (a Action) BuildContext(ctx context.Context) (Context, error) {
	if a.Build == nil {
		return Context{}, nil
	}
	return a.Build(ctx)
}

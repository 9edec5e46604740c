package compose

import (
	"context"
	"strings"

	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
)

// Manipulation rewrites an item's context before it is handed to the
// template engine.
type Manipulation func(domain.Context) domain.Context

// Builder constructs listing actions on top of a template engine.
type Builder struct {
	engine ports.TemplateEngine
}

// NewBuilder creates a new Builder.
func NewBuilder(engine ports.TemplateEngine) *Builder {
	return &Builder{engine: engine}
}

// Listing builds a render action whose body is the concatenation of every
// item rendered through the given template, in item order. The extra fields
// are added as literals.
func (b *Builder) Listing(url string, template domain.PagePath, items []domain.Renderable, extra []domain.Field) domain.Action {
	return b.ListingWith(url, []domain.PagePath{template}, items, nil, extra)
}

// ListingWith is the general listing form: each item's context is passed
// through manipulate (nil means unchanged) and rendered through the template
// chain. The action depends on the templates followed by every item's own
// dependencies, duplicates preserved.
func (b *Builder) ListingWith(url string, templates []domain.PagePath, items []domain.Renderable, manipulate Manipulation, extra []domain.Field) domain.Action {
	deps := make([]domain.PagePath, 0, len(templates)+len(items))
	deps = append(deps, templates...)
	for _, item := range items {
		deps = append(deps, item.Dependencies()...)
	}

	fields := make([]domain.Field, 0, len(extra)+1)
	fields = append(fields, domain.Field{
		Key:   domain.KeyBody,
		Value: domain.Deferred(b.renderAndConcat(manipulate, templates, items)),
	})
	fields = append(fields, extra...)

	return CustomPage(url, deps, fields)
}

// renderAndConcat defers the body computation: render every item in order
// and join the produced text. An empty item list yields an empty body.
func (b *Builder) renderAndConcat(manipulate Manipulation, templates []domain.PagePath, items []domain.Renderable) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		var sb strings.Builder
		for _, item := range items {
			itemCtx, err := item.Context(ctx)
			if err != nil {
				return "", err
			}
			if manipulate != nil {
				itemCtx = manipulate(itemCtx)
			}
			rendered, err := RenderChain(b.engine, templates, itemCtx)
			if err != nil {
				return "", err
			}
			sb.WriteString(rendered)
		}
		return sb.String(), nil
	}
}

// RenderChain folds a context through a sequence of templates: each
// template's output becomes the body the next template sees. It returns the
// final body, which for an empty chain is the context's own body.
func RenderChain(engine ports.TemplateEngine, templates []domain.PagePath, ctx domain.Context) (string, error) {
	scope := ctx.Clone()
	for _, tmpl := range templates {
		rendered, err := engine.Render(tmpl, scope)
		if err != nil {
			return "", err
		}
		scope[domain.KeyBody] = rendered
	}
	return scope[domain.KeyBody], nil
}

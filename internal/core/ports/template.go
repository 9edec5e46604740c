package ports

import "go.trai.ch/press/internal/core/domain"

// TemplateEngine defines the interface for rendering templates.
//
//go:generate mockgen -source=template.go -destination=mocks/mock_template.go -package=mocks
type TemplateEngine interface {
	// Render applies the template stored at the given source path to the
	// context and returns the produced text.
	Render(path domain.PagePath, ctx domain.Context) (string, error)

	// Invalidate drops any cached parse of the template at the given path.
	Invalidate(path domain.PagePath)
}

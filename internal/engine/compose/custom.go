// Package compose assembles render actions from page declarations.
package compose

import (
	"context"

	"go.trai.ch/press/internal/core/domain"
)

// CustomPage builds a render action from an explicit destination url, a
// dependency list, and an ordered field list. The dependencies are taken
// verbatim, the destination always yields the given url, and the build
// resolves every field. A single failing field fails the whole build.
func CustomPage(url string, deps []domain.PagePath, fields []domain.Field) domain.Action {
	return domain.Action{
		Dependencies: deps,
		Destination:  domain.StaticDestination(url),
		Build: func(ctx context.Context) (domain.Context, error) {
			return domain.ResolveFields(ctx, fields)
		},
	}
}

package domain

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Combine merges two render actions into one. Dependencies are concatenated
// in order (x before y), the destination is the first present one, and the
// combined build runs both sub-builds concurrently before taking the
// left-biased union of their contexts: on conflicting keys, x wins.
// Either sub-build failing fails the combined action.
func Combine(x, y Action) Action {
	deps := make([]PagePath, 0, len(x.Dependencies)+len(y.Dependencies))
	deps = append(deps, x.Dependencies...)
	deps = append(deps, y.Dependencies...)

	return Action{
		Dependencies: deps,
		Destination:  firstDestination(x.Destination, y.Destination),
		Build: func(ctx context.Context) (Context, error) {
			var xc, yc Context

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				xc, err = x.BuildContext(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				yc, err = y.BuildContext(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}

			return Union(xc, yc), nil
		},
	}
}

// firstDestination picks the first present destination. Presence is
// structural: a destination counts as present when its func is non-nil,
// regardless of what it would return.
func firstDestination(x, y DestinationFunc) DestinationFunc {
	if x != nil {
		return x
	}
	return y
}

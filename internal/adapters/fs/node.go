package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/press/internal/core/ports"
)

// Node IDs for the file system adapters.
const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	RouterNodeID   graft.ID = "adapter.fs.router"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// The hasher is the only consumer of the walker node.
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.InputResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.URLResolver]{
		ID:        RouterNodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.URLResolver, error) {
			return NewRouter(), nil
		},
	})
}

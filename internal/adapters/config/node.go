package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/press/internal/core/ports"
)

// NodeID identifies the site loader node.
const NodeID graft.ID = "adapter.site_loader"

func init() {
	graft.Register(graft.Node[ports.SiteLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.SiteLoader, error) {
			return NewLoader(), nil
		},
	})
}

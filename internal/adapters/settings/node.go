package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/press/internal/core/domain"
)

// NodeID identifies the settings node.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(context.Context) (domain.Settings, error) {
			return Load()
		},
	})
}

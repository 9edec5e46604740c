package ports

import "go.trai.ch/press/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeInputHash computes a single hash covering a render unit's
	// definition and the content of every file it depends on.
	ComputeInputHash(unit *domain.Unit, rootDir string) (string, error)

	// HashContent computes the hash of rendered output content.
	HashContent(content []byte) string
}

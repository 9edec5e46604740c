package ports

import "go.trai.ch/press/internal/core/domain"

// BuildInfoStore persists per-page staleness records between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get returns the stored record for a page, or nil when the page has
	// never been rendered.
	Get(pageName string) (*domain.BuildInfo, error)

	// Put stores a record, replacing any previous one for the same page.
	Put(info domain.BuildInfo) error
}

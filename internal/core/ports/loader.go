package ports

import "go.trai.ch/press/internal/core/domain"

// SiteLoader defines the interface for loading the site manifest.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type SiteLoader interface {
	// Load reads the manifest at the given path and returns the declared
	// site, rooted at the manifest's directory.
	Load(path string) (*domain.Site, error)
}

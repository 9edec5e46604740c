package ports

import "go.trai.ch/press/internal/core/domain"

// URLResolver derives destination urls for pages that do not declare one.
//
//go:generate mockgen -source=urls.go -destination=mocks/mock_urls.go -package=mocks
type URLResolver interface {
	// DestinationFor returns the destination url derived from a source path.
	DestinationFor(path domain.PagePath) string
}

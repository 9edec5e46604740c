// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/press/internal/core/domain"

// PageReader defines the interface for loading source pages.
//
//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type PageReader interface {
	// Read loads and parses the page stored at the given source path.
	Read(path domain.PagePath) (domain.Page, error)

	// Invalidate drops any cached copy of the given source path so the next
	// Read sees the file as it is on disk.
	Invalidate(path domain.PagePath)
}

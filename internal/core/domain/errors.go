package domain

import "go.trai.ch/zerr"

var (
	// ErrNoPagesDefined is returned when the site manifest defines no pages.
	ErrNoPagesDefined = zerr.New("no pages defined")

	// ErrPageNotFound is returned when a requested page name matches no page.
	ErrPageNotFound = zerr.New("page not found")

	// ErrDuplicateDestination is returned when two pages resolve to the same output URL.
	ErrDuplicateDestination = zerr.New("duplicate destination")

	// ErrMissingDestination is returned when a top-level page ends up without a destination.
	ErrMissingDestination = zerr.New("page has no destination")

	// ErrUnsupportedVersion is returned when the manifest declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported manifest version")

	// ErrManifestNotFound is returned when no manifest exists here or in any parent directory.
	ErrManifestNotFound = zerr.New("manifest not found")
)

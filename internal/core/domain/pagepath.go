package domain

import "unique"

// PagePath is a value object that wraps a unique.Handle[string].
// It identifies a source file by its literal path relative to the site root;
// two PagePaths are equal exactly when their strings are equal. No
// normalization is applied, deciding whether two spellings of a path refer
// to the same file is the caller's concern.
type PagePath struct {
	h unique.Handle[string]
}

// NewPagePath creates a new PagePath from a string.
// It uses the unique package to intern the string.
func NewPagePath(s string) PagePath {
	return PagePath{
		h: unique.Make(s),
	}
}

// String returns the underlying path string.
func (p PagePath) String() string {
	var zero unique.Handle[string]
	if p.h == zero {
		return ""
	}
	return p.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (p PagePath) Value() unique.Handle[string] {
	return p.h
}

// MarshalText implements encoding.TextMarshaler.
// It returns the bytes of the underlying path string.
func (p PagePath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It creates a new handle from the provided text.
func (p *PagePath) UnmarshalText(text []byte) error {
	p.h = unique.Make(string(text))
	return nil
}

// NewPagePaths converts path strings to a slice of PagePaths.
func NewPagePaths(strs ...string) []PagePath {
	if len(strs) == 0 {
		return nil
	}
	res := make([]PagePath, len(strs))
	for i, s := range strs {
		res[i] = NewPagePath(s)
	}
	return res
}

package domain

import "time"

// BuildInfo records the outcome of rendering one page. The renderer keeps
// one record per page and skips the page when a later run hashes to the
// same inputs.
type BuildInfo struct {
	PageName   string    `json:"page_name,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}

// Matches reports whether the record was produced from the same inputs.
// A nil record matches nothing.
func (b *BuildInfo) Matches(inputHash string) bool {
	return b != nil && b.InputHash == inputHash
}

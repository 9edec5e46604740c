package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks that previously rendered pages are still on disk.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs reports whether every destination still exists under the
// output directory. A missing file is a normal answer, not an error.
func (v *Verifier) VerifyOutputs(outputDir string, outputs []string) (bool, error) {
	for _, output := range outputs {
		path := filepath.Join(outputDir, output)
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return false, nil
		}
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}
	}
	return true, nil
}

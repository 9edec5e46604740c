package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputWriter = (*Writer)(nil)

// Writer writes rendered pages below a single output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a Writer rooted at outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Write stores content under the destination url, creating parent directories
// as needed. Destinations that escape the output directory are rejected.
func (w *Writer) Write(url string, content string) error {
	if !filepath.IsLocal(url) {
		return zerr.With(zerr.New("destination escapes output directory"), "url", url)
	}

	dest := filepath.Join(w.outputDir, url)
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "url", url)
	}

	if err := os.WriteFile(dest, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write output"), "url", url)
	}

	return nil
}

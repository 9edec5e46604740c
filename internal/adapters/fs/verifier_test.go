package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/press/internal/adapters/fs"
)

func TestVerifier_VerifyOutputs(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "posts"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "index.html"), []byte("<html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "posts", "hello.html"), []byte("<html>"), 0o600))

	verifier := fs.NewVerifier()

	tests := []struct {
		name    string
		outputs []string
		want    bool
	}{
		{"all outputs present", []string{"index.html", "posts/hello.html"}, true},
		{"one output missing", []string{"index.html", "missing.html"}, false},
		{"nothing to check", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := verifier.VerifyOutputs(outDir, tt.outputs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/press/internal/adapters/cas"
	"go.trai.ch/press/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".press", "state.json")

	store, err := cas.NewStore(path)
	require.NoError(t, err)

	info := domain.BuildInfo{
		PageName:   "about",
		InputHash:  "abc",
		OutputHash: "def",
		Timestamp:  time.Now(),
	}
	require.NoError(t, store.Put(info))

	got, err := store.Get("about")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc", got.InputHash)
	assert.Equal(t, "def", got.OutputHash)
}

func TestStore_UnknownPage(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	got, err := store.Get("never-rendered")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := cas.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(domain.BuildInfo{PageName: "index", InputHash: "xyz"}))

	second, err := cas.NewStore(path)
	require.NoError(t, err)

	got, err := second.Get("index")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "xyz", got.InputHash)
}

func TestStore_OmitsZeroFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := cas.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.BuildInfo{PageName: "zero"}))

	content, err := os.ReadFile(path) //nolint:gosec // Test-owned path
	require.NoError(t, err)

	assert.Contains(t, string(content), "page_name")
	assert.NotContains(t, string(content), "input_hash")
	assert.NotContains(t, string(content), "output_hash")
	assert.NotContains(t, string(content), "timestamp")
}

func TestStore_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cas.NewStore(path)
	require.Error(t, err)
}

func TestStore_RejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "pages": {}}`), 0o600))

	_, err := cas.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported build info store version")
}

package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("LEADS_BUCKET_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.BucketURL)
	assert.Equal(t, DefaultDebounceMillis, cfg.DebounceMillis)
	assert.False(t, cfg.Verbose)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("LEADS_BUCKET_URL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.BucketURL = "https://bucket.example.com"
	cfg.DebounceMillis = 500
	cfg.Verbose = true
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com", got.BucketURL)
	assert.Equal(t, 500, got.DebounceMillis)
	assert.True(t, got.Verbose)
	assert.Equal(t, 500*time.Millisecond, got.Debounce())
}

func TestLoad_EnvOverridesBucketURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.BucketURL = "https://from-file.example.com"
	require.NoError(t, cfg.Save(path))

	t.Setenv("LEADS_BUCKET_URL", "https://from-env.example.com")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example.com", got.BucketURL)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("bucket_url = ["), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NonPositiveDebounceFallsBack(t *testing.T) {
	t.Setenv("LEADS_BUCKET_URL", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("debounce_millis = -5"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounceMillis, cfg.DebounceMillis)
}

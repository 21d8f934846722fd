package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.toml")

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corvid.toml")

	want := config.Config{
		HashMB:    128,
		TimeLimit: 2500 * time.Millisecond,
		Noise:     15,
		BookPath:  "book.txt",
	}
	require.NoError(t, config.Save(want, path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMalformedFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corvid.toml")
	require.NoError(t, writeFile(path, "this is not [valid toml"))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0644)
}

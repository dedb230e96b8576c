package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := GlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".taskdeck"), dir)
}

func TestGlobalConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".taskdeck", "config.yaml"), path)
}

func TestProjectConfigPaths(t *testing.T) {
	assert.Equal(t, ".taskdeck", ProjectConfigDir())
	assert.Equal(t, filepath.Join(".taskdeck", "config.yaml"), ProjectConfigPath())
}

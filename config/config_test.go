package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, 1000, c.MaxArraySize)
	assert.Equal(t, 200, c.MaxDepth)
	assert.Equal(t, 1000, c.MaxLoopTimes)
	assert.False(t, c.AllowsInfinity())
	assert.False(t, c.AllowsNaN())
}

func TestLoadOverridesDefaultsFromYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viv.yaml")
	err := os.WriteFile(path, []byte("maxDepth: 50\ninfinity: Infinity\n"), 0o644)
	assert.NoError(t, err)

	c, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 50, c.MaxDepth)
	assert.Equal(t, 1000, c.MaxArraySize)
	assert.True(t, c.AllowsInfinity())
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/viv.yaml")
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	c := Default()
	clone := c.Clone()
	clone.MaxDepth = 1
	assert.Equal(t, 200, c.MaxDepth)
}

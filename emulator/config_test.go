package emulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.Equal("-", cfg.Input)
	assert.Equal("-", cfg.Output)
	assert.False(cfg.Trace)
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "um32.toml")
	err := os.WriteFile(path, []byte(
		"trace = true\n"+
			"trace-limit = 16\n"+
			"input = \"session.in\"\n",
	), 0o644)
	assert.NoError(err)

	cfg, err := LoadConfig(path)
	assert.NoError(err)
	assert.True(cfg.Trace)
	assert.Equal(uint32(16), cfg.TraceLimit)
	assert.Equal("session.in", cfg.Input)

	// Unset keys keep their defaults.
	assert.Equal("-", cfg.Output)
}

func TestLoadConfigMissing(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(err)
}

package console

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aarrwnh/arraylist/arraylist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, arraylist.DefaultCapacity, cfg.Capacity)
	assert.Equal(t, DefaultLimit, cfg.Limit)
	assert.Equal(t, DefaultAddress, cfg.Websocket.Address)
	assert.False(t, cfg.Websocket.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	p := writeFile(t, t.TempDir(), "arraylist.yml", `
capacity: 2
file: items.json
websocket:
  enabled: true
  address: 0.0.0.0:9000
`)

	cfg, err := LoadConfig(p)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Capacity)
	assert.Equal(t, DefaultLimit, cfg.Limit)
	assert.Equal(t, "items.json", cfg.File)
	assert.True(t, cfg.Title)
	assert.True(t, cfg.Websocket.Enabled)
	assert.Equal(t, "0.0.0.0:9000", cfg.Websocket.Address)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadConfig(writeFile(t, dir, "bad.yml", "capacity: [1"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, dir, "neg.yml", "capacity: -4"))
	assert.True(t, errors.Is(err, arraylist.ErrInvalidArgument))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero limit", func(c *Config) { c.Limit = 0 }},
		{"no address", func(c *Config) {
			c.Websocket.Enabled = true
			c.Websocket.Address = ""
		}},
		{"cert without key", func(c *Config) { c.Websocket.Cert = "cert.pem" }},
		{"key without cert", func(c *Config) { c.Websocket.Key = "key.pem" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

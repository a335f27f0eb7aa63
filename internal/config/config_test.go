package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "output", cfg.Output)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 0.3, cfg.Bandwidth)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
output = "images"
dpi = 150

[gif]
delay = 80
`)
	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "images", cfg.Output)
	assert.Equal(t, 150, cfg.DPI)
	assert.Equal(t, 80, cfg.GIF.Delay)
	assert.Equal(t, uint64(42), cfg.Seed, "unset keys keep their default")
	assert.Equal(t, 0.3, cfg.Options().Bandwidth)
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, false)
	assert.Error(t, err)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{name: "syntax", body: "dpi = ["},
		{name: "unknown key", body: "colour = \"red\"", invalid: true},
		{name: "zero dpi", body: "dpi = 0", invalid: true},
		{name: "negative bandwidth", body: "bandwidth = -0.1", invalid: true},
		{name: "nan bandwidth", body: "bandwidth = nan", invalid: true},
		{name: "infinite bandwidth", body: "bandwidth = inf", invalid: true},
		{name: "empty output", body: "output = \"\"", invalid: true},
		{name: "negative delay", body: "[gif]\ndelay = -1", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), false)
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

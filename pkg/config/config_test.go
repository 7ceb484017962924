package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.OutDir)
	assert.Equal(t, NewlineAuto, cfg.Newline)
	assert.Empty(t, cfg.PypiHost)
	assert.Empty(t, cfg.PypiURL)
	assert.Equal(t, filepath.Join(dir, "config.toml"), cfg.GetPath())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BATIFY_TEST_OUT", "/tmp/wrappers")

	content := `
outdir = "$BATIFY_TEST_OUT/bat"
pypi_host = "pypi.local"
pypi_url = "http://pypi.local/simple"
newline = "crlf"
`
	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644)
	require.NoError(t, err)

	t.Setenv(EnvName, dir)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		OutDir:   "/tmp/wrappers/bat",
		PypiHost: "pypi.local",
		PypiURL:  "http://pypi.local/simple",
		Newline:  NewlineCRLF,
		path:     filepath.Join(dir, "config.toml"),
	}, cfg)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Test bad toml",
			content: "outdir = ",
		},
		{
			name:    "Test bad newline",
			content: `newline = "cr"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(tt.content), 0644)
			require.NoError(t, err)

			_, err = Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "dist", cfg.OutDir)
	assert.Equal(t, NewlineAuto, cfg.Newline)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const EnvName = "BATIFY_CONFIG"

const (
	defaultOutDir  = "dist"
	defaultNewline = NewlineAuto
)

const (
	NewlineAuto = "auto"
	NewlineLF   = "lf"
	NewlineCRLF = "crlf"
)

// Config holds defaults for the command flags. Every field can be
// overridden on the command line.
type Config struct {
	OutDir string `json:"outdir" toml:"outdir"`

	PypiHost string `json:"pypi_host" toml:"pypi_host"`
	PypiURL  string `json:"pypi_url" toml:"pypi_url"`

	Newline string `json:"newline" toml:"newline"`

	path string
}

// Load reads config.toml from dir, falling back to $BATIFY_CONFIG and then
// ~/.config/batify. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = os.Getenv(EnvName)
	}
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(homeDir, ".config", "batify")
	}

	path := filepath.Join(dir, "config.toml")

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if data != nil {
		err = toml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config toml: %w", err)
		}
	}

	err = cfg.complete()
	if err != nil {
		return nil, fmt.Errorf("complete config: %w", err)
	}
	cfg.path = path

	return &cfg, nil
}

func Default() *Config {
	cfg := &Config{}
	_ = cfg.complete()
	return cfg
}

func (c *Config) complete() error {
	if c.OutDir == "" {
		c.OutDir = defaultOutDir
	}
	c.OutDir = os.ExpandEnv(c.OutDir)

	if c.Newline == "" {
		c.Newline = defaultNewline
	}
	return ValidateNewline(c.Newline)
}

func (c *Config) GetPath() string {
	return c.path
}

func ValidateNewline(newline string) error {
	switch newline {
	case NewlineAuto, NewlineLF, NewlineCRLF:
		return nil
	default:
		return fmt.Errorf("invalid newline %q, should be one of %q, %q, %q",
			newline, NewlineAuto, NewlineLF, NewlineCRLF)
	}
}

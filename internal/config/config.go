package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// PluginDir holds plugin.toml and the packaged lang_*.yml defaults.
	PluginDir string
	// DataDir is the plugin instance's writable data directory.
	DataDir string
	// Locale overrides the manifest's default locale when set.
	Locale string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment.
	}

	cfg := &Config{
		PluginDir: os.Getenv("LOCALETOOL_PLUGIN_DIR"),
		DataDir:   os.Getenv("LOCALETOOL_DATA_DIR"),
		Locale:    os.Getenv("LOCALETOOL_LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and rejects malformed values.
func (c *Config) validate() error {
	if strings.TrimSpace(c.PluginDir) == "" {
		c.PluginDir = "."
	}

	if strings.TrimSpace(c.DataDir) == "" {
		// Matches the layout game servers give plugins: data lives next
		// to the packaged resources.
		c.DataDir = filepath.Join(c.PluginDir, "data")
	}

	if c.Locale != "" {
		for _, r := range c.Locale {
			if r != '_' && r != '-' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
				return fmt.Errorf("config: LOCALETOOL_LOCALE must be a locale code such as en_US, got %q", c.Locale)
			}
		}
	}

	return nil
}

package plugin

import (
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// ManifestName is the file every packaged resource set must carry.
const ManifestName = "plugin.toml"

// Manifest describes a plugin to its host runtime.
type Manifest struct {
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	DefaultLocale string   `toml:"default-locale"`
	Authors       []string `toml:"authors"`
}

// LoadManifest reads and validates plugin.toml from a resource set.
// A missing default-locale falls back to en_US.
func LoadManifest(resources fs.FS) (Manifest, error) {
	data, err := fs.ReadFile(resources, ManifestName)
	if err != nil {
		return Manifest{}, fmt.Errorf("plugin: read %s: %w", ManifestName, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("plugin: parse %s: %w", ManifestName, err)
	}
	if m.Name == "" {
		return Manifest{}, fmt.Errorf("plugin: %s: name is required", ManifestName)
	}
	if m.DefaultLocale == "" {
		m.DefaultLocale = "en_US"
	}
	return m, nil
}

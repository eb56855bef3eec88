// Package plugin abstracts the game-server plugin runtime that owns a
// locale store: an active/enabled flag, a writable per-plugin data
// directory, and packaged resources that can be copied into it.
package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Host exposes the minimal set of runtime services a plugin component
// needs. Implementations wrap a concrete server framework; FSHost is a
// standalone filesystem-backed one.
type Host interface {
	// Active reports whether the plugin instance is currently enabled.
	Active() bool
	// DataDir resolves the plugin's writable data directory.
	DataDir() string
	// CopyResource copies the named packaged resource into the data
	// directory, creating it if needed. When overwrite is false an
	// existing file is left untouched.
	CopyResource(name string, overwrite bool) error
}

// FSHost is a Host backed by an fs.FS of packaged plugin resources and a
// writable directory on disk. The resource set must contain a plugin.toml
// manifest.
//
// FSHost is not safe for concurrent use; the plugin runtime it models is
// single-threaded for plugin logic.
type FSHost struct {
	manifest  Manifest
	resources fs.FS
	dataDir   string
	enabled   bool
}

// NewFSHost builds a host from packaged resources and a data directory.
// The data directory does not have to exist yet; it is created on the
// first resource copy.
func NewFSHost(resources fs.FS, dataDir string) (*FSHost, error) {
	if resources == nil {
		return nil, errors.New("plugin: resources must not be nil")
	}
	if dataDir == "" {
		return nil, errors.New("plugin: data directory must not be empty")
	}
	manifest, err := LoadManifest(resources)
	if err != nil {
		return nil, err
	}
	return &FSHost{
		manifest:  manifest,
		resources: resources,
		dataDir:   dataDir,
	}, nil
}

// Enable marks the plugin instance as active.
func (h *FSHost) Enable() { h.enabled = true }

// Disable marks the plugin instance as inactive.
func (h *FSHost) Disable() { h.enabled = false }

func (h *FSHost) Active() bool { return h.enabled }

func (h *FSHost) DataDir() string { return h.dataDir }

// Name returns the plugin name declared in the manifest.
func (h *FSHost) Name() string { return h.manifest.Name }

// Manifest returns the parsed plugin manifest.
func (h *FSHost) Manifest() Manifest { return h.manifest }

func (h *FSHost) CopyResource(name string, overwrite bool) error {
	data, err := fs.ReadFile(h.resources, name)
	if err != nil {
		return fmt.Errorf("plugin %s: resource %q is not packaged: %w", h.manifest.Name, name, err)
	}

	dest := filepath.Join(h.dataDir, name)
	if !overwrite {
		if _, err := os.Stat(dest); err == nil {
			return nil
		}
	}
	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		return fmt.Errorf("plugin %s: create data dir: %w", h.manifest.Name, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("plugin %s: write %s: %w", h.manifest.Name, dest, err)
	}
	return nil
}

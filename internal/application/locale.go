package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MSUPugins/MSUCore/pkg/i18n"
	"github.com/MSUPugins/MSUCore/pkg/plugin"
)

// LocaleInfo summarizes one loaded locale file for display.
type LocaleInfo struct {
	Code        string
	Language    string
	FileVersion int
	Contributor string
	Keys        []string
}

// LocaleService orchestrates locale store operations for the CLI.
type LocaleService struct {
	host  plugin.Host
	store *i18n.LocaleStore
}

func NewLocaleService(host plugin.Host) (*LocaleService, error) {
	store, err := i18n.New(host)
	if err != nil {
		return nil, err
	}
	return &LocaleService{host: host, store: store}, nil
}

// Check loads and validates the locale file for code.
func (s *LocaleService) Check(code string) error {
	return s.store.SetLocale(code)
}

// Info loads the locale file for code and reports its metadata.
func (s *LocaleService) Info(code string) (*LocaleInfo, error) {
	if err := s.store.SetLocale(code); err != nil {
		return nil, err
	}
	return s.describe()
}

// Get translates one key under the given locale. Unknown keys come back
// as the store's visible placeholder, not an error.
func (s *LocaleService) Get(code, key string) (string, error) {
	if err := s.store.SetLocale(code); err != nil {
		return "", err
	}
	return s.store.Translate(key)
}

// Reset restores the packaged default file for code and reports the
// reloaded metadata. A file on disk that fails validation is exactly
// what reset recovers from, so in that case the packaged default is
// force-copied before loading.
func (s *LocaleService) Reset(code string) (*LocaleInfo, error) {
	err := s.store.SetLocale(code)
	if errors.Is(err, i18n.ErrConfig) {
		if copyErr := s.host.CopyResource(i18n.FileName(code), true); copyErr != nil {
			return nil, copyErr
		}
		err = s.store.SetLocale(code)
	}
	if err != nil {
		return nil, err
	}
	if err := s.store.ResetLocaleFile(); err != nil {
		return nil, err
	}
	return s.describe()
}

// Scaffold writes a template locale file for code into dir, for plugin
// authors starting a new translation. Existing files are never touched.
func (s *LocaleService) Scaffold(dir, code string, template []byte) (string, error) {
	path := filepath.Join(dir, i18n.FileName(code))
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("locale file already exists: %s", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, template, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *LocaleService) describe() (*LocaleInfo, error) {
	language, err := s.store.LanguageName()
	if err != nil {
		return nil, err
	}
	version, err := s.store.LanguageFileVersion()
	if err != nil {
		return nil, err
	}
	contributor, err := s.store.Contributor()
	if err != nil {
		return nil, err
	}
	keys, err := s.store.Keys()
	if err != nil {
		return nil, err
	}
	return &LocaleInfo{
		Code:        s.store.LocaleCode(),
		Language:    language,
		FileVersion: version,
		Contributor: contributor,
		Keys:        keys,
	}, nil
}

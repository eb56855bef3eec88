// Package i18n manages per-locale translation files for a plugin.
// The translated messages are stored in 'lang_xx_XX.yml' files under the
// plugin data directory; missing files are copied from the packaged
// defaults on first use.
package i18n

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/MSUPugins/MSUCore/pkg/plugin"
)

const (
	versionKey     = "language-file-version"
	languageKey    = "language"
	contributorKey = "language-file-contributor"

	// unknownField is returned for absent optional metadata fields.
	unknownField = "(unknown)"
)

// FileName returns the locale file name for a locale code, e.g.
// "lang_en_US.yml" for "en_US".
func FileName(code string) string {
	return "lang_" + code + ".yml"
}

// LocaleStore serves key→string translations for one locale at a time.
// It becomes usable after the first successful SetLocale and reloads the
// mapping wholesale on every subsequent call.
//
// LocaleStore is not safe for concurrent use; guard SetLocale/Translate
// externally if the host runtime is multi-threaded.
type LocaleStore struct {
	host plugin.Host

	code        string
	entries     map[string]string
	version     int
	initialized bool
}

// New binds a store to a running host plugin. It performs no I/O.
// Fails with ErrInvalidArgument when host is nil and with
// ErrInvalidState when the plugin is not active.
func New(host plugin.Host) (*LocaleStore, error) {
	if host == nil {
		return nil, fmt.Errorf("i18n: host must not be nil: %w", ErrInvalidArgument)
	}
	if !host.Active() {
		return nil, fmt.Errorf("i18n: host plugin is not active: %w", ErrInvalidState)
	}
	return &LocaleStore{host: host}, nil
}

// SetLocale loads the locale file for code, copying the packaged default
// into the data directory first when no file exists there. The store is
// updated only after the file passes validation; on any error the
// previous locale, mapping and initialized flag are retained.
func (s *LocaleStore) SetLocale(code string) error {
	if code == "" {
		return fmt.Errorf("i18n: locale code must not be empty: %w", ErrInvalidArgument)
	}

	entries, version, err := s.load(code)
	if err != nil {
		return err
	}

	s.code = code
	s.entries = entries
	s.version = version
	s.initialized = true
	return nil
}

func (s *LocaleStore) load(code string) (map[string]string, int, error) {
	name := FileName(code)
	path := filepath.Join(s.host.DataDir(), name)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.host.CopyResource(name, false); err != nil {
			return nil, 0, fmt.Errorf("i18n: copy packaged %s: %w", name, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("i18n: read %s: %w", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("i18n: parse %s: %v: %w", name, err, ErrConfig)
	}

	version, ok := intValue(doc[versionKey])
	if !ok {
		return nil, 0, fmt.Errorf("i18n: %s: %s is missing or not an integer: %w", name, versionKey, ErrConfig)
	}

	entries := make(map[string]string, len(doc))
	flatten("", doc, entries)
	return entries, version, nil
}

// Translate returns the translation for key, or the literal
// "[NO TRANSLATION: key]" placeholder when the key is absent. A missing
// key is never an error; only an uninitialized store is.
func (s *LocaleStore) Translate(key string) (string, error) {
	if err := s.requireInitialized(); err != nil {
		return "", err
	}
	if v, ok := s.entries[key]; ok {
		return v, nil
	}
	return "[NO TRANSLATION: " + key + "]", nil
}

// LocaleCode returns the current locale code, or "" when no locale has
// been set yet.
func (s *LocaleStore) LocaleCode() string {
	return s.code
}

// LanguageName returns the display name from the "language" field, or
// "(unknown)" when the field is absent.
func (s *LocaleStore) LanguageName() (string, error) {
	return s.field(languageKey)
}

// LanguageFileVersion returns the integer "language-file-version" field;
// SetLocale guarantees it is present on an initialized store.
func (s *LocaleStore) LanguageFileVersion() (int, error) {
	if err := s.requireInitialized(); err != nil {
		return 0, err
	}
	return s.version, nil
}

// Contributor returns the "language-file-contributor" field, or
// "(unknown)" when the field is absent.
func (s *LocaleStore) Contributor() (string, error) {
	return s.field(contributorKey)
}

// Keys returns every translation key in the loaded mapping, sorted.
func (s *LocaleStore) Keys() ([]string, error) {
	if err := s.requireInitialized(); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// ResetLocaleFile overwrites the locale file for the current code with
// the packaged default, then reloads it. Used to recover from a
// corrupted or hand-edited file.
func (s *LocaleStore) ResetLocaleFile() error {
	if err := s.requireInitialized(); err != nil {
		return err
	}
	name := FileName(s.code)
	if err := s.host.CopyResource(name, true); err != nil {
		return fmt.Errorf("i18n: restore packaged %s: %w", name, err)
	}
	return s.SetLocale(s.code)
}

func (s *LocaleStore) requireInitialized() error {
	if !s.initialized {
		return fmt.Errorf("i18n: locale not set, call SetLocale first: %w", ErrInvalidState)
	}
	return nil
}

func (s *LocaleStore) field(key string) (string, error) {
	if err := s.requireInitialized(); err != nil {
		return "", err
	}
	if v, ok := s.entries[key]; ok {
		return v, nil
	}
	return unknownField, nil
}

// flatten walks nested mappings into dotted keys ("messages.hello").
// Only scalar string and integer values become entries; everything else
// is skipped.
func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case int:
			out[key] = strconv.Itoa(val)
		case int64:
			out[key] = strconv.FormatInt(val, 10)
		case map[string]any:
			flatten(key, val, out)
		}
	}
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

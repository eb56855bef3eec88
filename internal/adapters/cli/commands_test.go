package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MSUPugins/MSUCore/internal/adapters/cli"
	"github.com/MSUPugins/MSUCore/internal/application"
	"github.com/MSUPugins/MSUCore/pkg/plugin"
)

// newTool lays out a plugin directory on disk, the way localetool sees
// one, and returns a runner for command invocations.
func newTool(t *testing.T) (run func(args ...string) (string, error), pluginDir string) {
	t.Helper()
	return newToolWithDefault(t, "")
}

// newToolWithDefault is newTool with an explicit default locale;
// "" falls back to the manifest's default-locale.
func newToolWithDefault(t *testing.T, defaultLocale string) (run func(args ...string) (string, error), pluginDir string) {
	t.Helper()

	pluginDir = t.TempDir()
	writeFile(t, pluginDir, "plugin.toml", "name = \"MSUCore\"\ndefault-locale = \"en_US\"\n")
	writeFile(t, pluginDir, "lang_en_US.yml",
		"language-file-version: 1\nlanguage: English\ngreeting: Hello\n")

	host, err := plugin.NewFSHost(os.DirFS(pluginDir), filepath.Join(pluginDir, "data"))
	require.NoError(t, err)
	host.Enable()
	svc, err := application.NewLocaleService(host)
	require.NoError(t, err)

	if defaultLocale == "" {
		defaultLocale = host.Manifest().DefaultLocale
	}

	run = func(args ...string) (string, error) {
		root := cli.NewRootCmd(svc, pluginDir, defaultLocale)
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		err := root.Execute()
		return out.String(), err
	}
	return run, pluginDir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInfoCommand(t *testing.T) {
	run, _ := newTool(t)

	out, err := run("info")
	require.NoError(t, err)
	require.Contains(t, out, "locale:       en_US")
	require.Contains(t, out, "language:     English")
	require.Contains(t, out, "file version: 1")
}

func TestCheckCommand(t *testing.T) {
	run, pluginDir := newTool(t)

	out, err := run("check")
	require.NoError(t, err)
	require.Contains(t, out, "en_US: ok")

	// Break the copied file and check again.
	writeFile(t, filepath.Join(pluginDir, "data"), "lang_en_US.yml", "greeting: Hello\n")
	_, err = run("check")
	require.ErrorContains(t, err, "language-file-version")
}

func TestGetCommand(t *testing.T) {
	run, _ := newTool(t)

	out, err := run("get", "greeting")
	require.NoError(t, err)
	require.Equal(t, "Hello\n", out)

	out, err = run("get", "missing")
	require.NoError(t, err)
	require.Equal(t, "[NO TRANSLATION: missing]\n", out)
}

func TestResetCommand(t *testing.T) {
	run, pluginDir := newTool(t)

	_, err := run("check")
	require.NoError(t, err)
	writeFile(t, filepath.Join(pluginDir, "data"), "lang_en_US.yml",
		"language-file-version: 5\ngreeting: Howdy\n")

	out, err := run("reset")
	require.NoError(t, err)
	require.Contains(t, out, "restored to packaged default")

	out, err = run("get", "greeting")
	require.NoError(t, err)
	require.Equal(t, "Hello\n", out)

	// A file broken badly enough to fail validation must also be
	// recoverable.
	writeFile(t, filepath.Join(pluginDir, "data"), "lang_en_US.yml", "greeting: Mangled\n")
	out, err = run("reset")
	require.NoError(t, err)
	require.Contains(t, out, "restored to packaged default")

	out, err = run("get", "greeting")
	require.NoError(t, err)
	require.Equal(t, "Hello\n", out)
}

func TestDefaultLocaleIsNormalized(t *testing.T) {
	run, _ := newToolWithDefault(t, "en-us")

	out, err := run("check")
	require.NoError(t, err)
	require.Contains(t, out, "en_US: ok")
}

func TestInitCommand(t *testing.T) {
	run, pluginDir := newTool(t)

	out, err := run("init", "de-de")
	require.NoError(t, err)
	require.Contains(t, out, "lang_de_DE.yml")
	require.FileExists(t, filepath.Join(pluginDir, "lang_de_DE.yml"))

	_, err = run("init", "de_DE")
	require.ErrorContains(t, err, "already exists")
}

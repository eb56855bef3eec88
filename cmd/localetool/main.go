package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/MSUPugins/MSUCore/internal/adapters/cli"
	"github.com/MSUPugins/MSUCore/internal/application"
	"github.com/MSUPugins/MSUCore/internal/config"
	"github.com/MSUPugins/MSUCore/pkg/plugin"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	host, err := plugin.NewFSHost(os.DirFS(cfg.PluginDir), cfg.DataDir)
	if err != nil {
		slog.Error("load plugin resources", "dir", cfg.PluginDir, "err", err)
		os.Exit(1)
	}
	// The tool stands in for the plugin's runtime while a command runs.
	host.Enable()

	svc, err := application.NewLocaleService(host)
	if err != nil {
		slog.Error("bind locale store", "plugin", host.Name(), "err", err)
		os.Exit(1)
	}

	locale := cfg.Locale
	if locale == "" {
		locale = host.Manifest().DefaultLocale
	}

	if err := cli.NewRootCmd(svc, cfg.PluginDir, locale).Execute(); err != nil {
		os.Exit(1)
	}
}

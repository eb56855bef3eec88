// Package cli exposes the localetool commands over the locale service.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/MSUPugins/MSUCore/internal/application"
)

// NewRootCmd assembles the localetool command tree. pluginDir is where
// init scaffolds new locale files; defaultLocale is used when a command
// is run without an explicit code.
func NewRootCmd(svc *application.LocaleService, pluginDir, defaultLocale string) *cobra.Command {
	// The default may come from the environment or the manifest; give it
	// the same treatment as user-typed codes.
	defaultLocale = NormalizeLocale(defaultLocale)

	root := &cobra.Command{
		Use:          "localetool",
		Short:        "Inspect and maintain plugin locale files",
		SilenceUsage: true,
	}

	root.AddCommand(
		newInfoCmd(svc, defaultLocale),
		newCheckCmd(svc, defaultLocale),
		newGetCmd(svc, defaultLocale),
		newResetCmd(svc, defaultLocale),
		newInitCmd(svc, pluginDir),
	)
	return root
}

// localeArg resolves the locale code for commands taking an optional
// positional code.
func localeArg(args []string, fallback string) string {
	if len(args) > 0 {
		return NormalizeLocale(args[0])
	}
	return fallback
}

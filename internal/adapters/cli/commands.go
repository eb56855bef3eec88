package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MSUPugins/MSUCore/internal/application"
	"github.com/MSUPugins/MSUCore/internal/infrastructure/resources"
)

func newInfoCmd(svc *application.LocaleService, defaultLocale string) *cobra.Command {
	return &cobra.Command{
		Use:   "info [code]",
		Short: "Show metadata of a locale file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := svc.Info(localeArg(args, defaultLocale))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "locale:       %s\n", info.Code)
			fmt.Fprintf(out, "language:     %s\n", info.Language)
			fmt.Fprintf(out, "file version: %d\n", info.FileVersion)
			fmt.Fprintf(out, "contributor:  %s\n", info.Contributor)
			fmt.Fprintf(out, "keys:         %d\n", len(info.Keys))
			return nil
		},
	}
}

func newCheckCmd(svc *application.LocaleService, defaultLocale string) *cobra.Command {
	return &cobra.Command{
		Use:   "check [code]",
		Short: "Validate a locale file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := localeArg(args, defaultLocale)
			if err := svc.Check(code); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", code)
			return nil
		},
	}
}

func newGetCmd(svc *application.LocaleService, defaultLocale string) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Translate a single key",
		Long: `Translates one key under the selected locale. A key with no
translation prints the [NO TRANSLATION: key] placeholder verbatim, so
untranslated entries are easy to spot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := defaultLocale
			if locale != "" {
				code = NormalizeLocale(locale)
			}
			value, err := svc.Get(code, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "locale code (defaults to the plugin's locale)")
	return cmd
}

func newResetCmd(svc *application.LocaleService, defaultLocale string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset [code]",
		Short: "Restore a locale file to its packaged default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := svc.Reset(localeArg(args, defaultLocale))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s restored to packaged default (file version %d, %d keys)\n",
				info.Code, info.FileVersion, len(info.Keys))
			return nil
		},
	}
}

func newInitCmd(svc *application.LocaleService, pluginDir string) *cobra.Command {
	return &cobra.Command{
		Use:   "init <code>",
		Short: "Scaffold a new locale file in the plugin resource directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := svc.Scaffold(pluginDir, NormalizeLocale(args[0]), resources.LocaleTemplate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	}
}

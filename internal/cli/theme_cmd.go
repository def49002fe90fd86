package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/page"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [dark|light|clear]",
		Short: "Show or set the stored theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 {
				value, ok, err := app.Prefs.Get(ctx, page.PrefKeyTheme)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "unset (following the system)")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			}

			switch args[0] {
			case page.ThemeDark, page.ThemeLight:
				if err := app.Prefs.Set(ctx, page.PrefKeyTheme, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", args[0])
			case "clear":
				if err := app.Prefs.Delete(ctx, page.PrefKeyTheme); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "theme preference cleared")
			default:
				return fmt.Errorf("unknown theme %q: want dark, light, or clear", args[0])
			}
			return nil
		},
	}
	return cmd
}

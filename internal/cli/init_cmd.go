package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"folio/internal/page"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively create the folio config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			pagePath := app.Cfg.Page
			theme := "system"
			watch := app.Cfg.Watch

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Page to preview (blank for the embedded sample)").
						Placeholder("site/index.html").
						Value(&pagePath).
						Validate(validatePagePath),
					huh.NewSelect[string]().
						Title("Default theme").
						Options(
							huh.NewOption("Follow the system", "system"),
							huh.NewOption("Light", page.ThemeLight),
							huh.NewOption("Dark", page.ThemeDark),
						).
						Value(&theme),
					huh.NewConfirm().
						Title("Reload the preview when the page file changes?").
						Value(&watch),
				),
			)
			if err := form.Run(); err != nil {
				return fmt.Errorf("init canceled: %w", err)
			}

			app.Cfg.Page = pagePath
			app.Cfg.Watch = watch
			if err := app.Cfg.Save(app.ConfigPath); err != nil {
				return err
			}

			switch theme {
			case "system":
				if err := app.Prefs.Delete(cmd.Context(), page.PrefKeyTheme); err != nil {
					return err
				}
			default:
				if err := app.Prefs.Set(cmd.Context(), page.PrefKeyTheme, theme); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", app.ConfigPath)
			return nil
		},
	}
}

func validatePagePath(s string) error {
	if s == "" {
		return nil
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	return nil
}

package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "folio" command and registers all
// subcommands against the provided App. Running folio with no subcommand
// starts the preview.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "folio",
		Short: "Terminal preview for a single-page site",
		Long: "folio loads a single-page site's HTML, runs its behavior layer\n" +
			"(navigation drawer, theme switch, scroll animations) natively, and\n" +
			"renders a live interactive preview in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(app)
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(app),
		newInitCmd(app),
		newThemeCmd(app),
	)

	return root
}

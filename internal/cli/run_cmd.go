package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"folio/internal/content"
)

func newRunCmd(app *App) *cobra.Command {
	var pageFlag string
	var noWatch bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pageFlag != "" {
				app.Cfg.Page = pageFlag
			}
			if noWatch {
				app.Cfg.Watch = false
			}
			return runPreview(app)
		},
	}

	cmd.Flags().StringVarP(&pageFlag, "page", "p", "", "HTML page to preview (default: embedded sample)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "disable live reload of the page file")

	return cmd
}

func runPreview(app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("the preview needs an interactive terminal")
	}

	pg, err := content.Load(app.Cfg.Page)
	if err != nil {
		return err
	}
	pg.CheckAssets(func(src string) {
		app.Log.Warn("resource failed to load", "src", src)
	})

	m := newHostModel(app, pg)

	if app.Cfg.Watch && pg.Path != "" {
		w, err := content.Watch(pg.Path)
		if err != nil {
			app.Log.Warn("live reload unavailable", "err", err)
		} else {
			m.watcher = w
			defer w.Close()
		}
	}

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running preview: %w", err)
	}
	return nil
}

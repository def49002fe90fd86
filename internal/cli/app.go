// Package cli wires folio's commands and the terminal preview: a bubbletea
// host that loads a page, runs its behavior engine, and renders the live
// document state.
package cli

import (
	"log/slog"

	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/prefs"
)

// App holds the dependencies commands need.
type App struct {
	Cfg   *config.Config
	Prefs *prefs.SQLiteStore
	Log   *slog.Logger
	Ring  *logging.Ring

	// ConfigPath is where `folio init` writes its file.
	ConfigPath string

	// IsInteractive reports whether stdin is attached to a terminal.
	// The preview refuses to start without one.
	IsInteractive func() bool
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"folio/internal/cli"
	"folio/internal/config"
	"folio/internal/db"
	"folio/internal/logging"
	"folio/internal/prefs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine the folio directory: env var or default ~/.folio
	dir := os.Getenv("FOLIO_DIR")
	if dir == "" {
		var err error
		dir, err = config.DefaultDir()
		if err != nil {
			return err
		}
	}

	cfgPath := filepath.Join(dir, "folio.yml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.DB == "" {
		cfg.DB = filepath.Join(dir, "folio.db")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(dir, "folio.log")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ring := logging.NewRing(200)
	logger, logCloser, err := logging.New(cfg.LogFile, ring)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	database, err := db.OpenDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Cfg:        cfg,
		Prefs:      prefs.NewSQLiteStore(database),
		Log:        logger,
		Ring:       ring,
		ConfigPath: cfgPath,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

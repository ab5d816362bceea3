// Command gallerydemo presents a gallery session in the terminal.
//
// Configuration comes from the environment and an optional gallery.yaml:
//
//	GALLERY_ITEMS           number of items (default 12)
//	GALLERY_START           index to open at (default 0)
//	GALLERY_CONFIG_DIR      directory searched for gallery.yaml (default ".")
//	GALLERY_ROTATION_AWARE  leave rotation to the terminal (default true)
//	GALLERY_VERBOSE         include stack traces in error logs
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/gallery/cmd/gallerydemo/internal/tui"
	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/errors"
)

type settings struct {
	Items         int    `env:"GALLERY_ITEMS" envDefault:"12"`
	Start         int    `env:"GALLERY_START" envDefault:"0"`
	ConfigDir     string `env:"GALLERY_CONFIG_DIR" envDefault:"."`
	RotationAware bool   `env:"GALLERY_ROTATION_AWARE" envDefault:"true"`
	Verbose       bool   `env:"GALLERY_VERBOSE"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gallerydemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg settings
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose})

	opts, err := config.LoadOptional(cfg.ConfigDir)
	if err != nil {
		return err
	}

	m, err := tui.New(tui.Config{
		Items:         cfg.Items,
		Start:         cfg.Start,
		RotationAware: cfg.RotationAware,
		Options:       opts,
	})
	if err != nil {
		return err
	}
	errors.SetHandler(m.ErrorHandler())
	defer errors.SetHandler(nil)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

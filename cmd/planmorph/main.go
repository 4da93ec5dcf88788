// cmd/planmorph/main.go
//
// Entry point for the wall drawing. There are no flags: it always reads
// walls.json from the directory it is run in.
//
// Flow:
// 1. Read planmorph.yaml (optional) and open the log file
// 2. Load walls.json; a missing or malformed file exits with status 1
// 3. Draw the walls in a window (or the terminal when there is no display)
//    and wait for the viewer to be closed

package main

import (
	"fmt"
	"os"

	"github.com/kingrea/planmorph/internal/app"
	"github.com/kingrea/planmorph/internal/config"
	"github.com/kingrea/planmorph/internal/logging"
	"github.com/kingrea/planmorph/internal/viewer/terminal"
	"github.com/kingrea/planmorph/internal/viewer/window"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := openLogger(cfg)

	a := app.New(cfg,
		app.WithLogger(logger),
		app.WithViewer(config.ViewerWindow, func(c *config.Config) (app.Viewer, error) {
			width, height := c.WindowSize()
			return window.Viewer{Width: width, Height: height}, nil
		}),
		app.WithViewer(config.ViewerTerminal, func(*config.Config) (app.Viewer, error) {
			return terminal.Viewer{}, nil
		}),
	)

	// Run blocks until the viewer is closed
	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}

// openLogger returns nil when logging is off or the file cannot be opened;
// the drawing goes ahead either way.
func openLogger(cfg *config.Config) *logging.Logger {
	if !cfg.LoggingEnabled() {
		return nil
	}
	logger, err := logging.New(cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return nil
	}
	return logger
}

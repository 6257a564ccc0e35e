package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"autostrada/internal/config"
	"autostrada/internal/engine"
	"autostrada/internal/logger"
)

var version = "dev"

func main() {
	quiet := flag.Bool("quiet", false, "suppress the startup banner and run summary")
	color := flag.String("color", "auto", "color mode: auto|always|never")
	flag.Parse()

	cfg := config.Default()
	cfg.Quiet = *quiet
	cfg.ColorMode = *color

	switch cfg.ColorMode {
	case "always":
		logger.SetColorMode(logger.ColorAlways)
	case "never":
		logger.SetColorMode(logger.ColorNever)
	default:
		logger.SetColorMode(logger.ColorAuto)
	}

	runID := uuid.New().String()

	if !cfg.Quiet {
		logger.Banner(version)
		logger.Info("run", fmt.Sprintf("id %s", runID))
	}

	e := engine.New()
	if err := e.Run(os.Stdin, os.Stdout); err != nil {
		logger.Error("run", fmt.Sprintf("%s: %v", runID, err))
		os.Exit(1)
	}

	if !cfg.Quiet {
		logger.Section("Summary")
		logger.Stats("stations", e.StationCount())
	}
}

package main

import (
	"context"
	"markerview/internal/config"
	"markerview/internal/logging"
	"markerview/internal/viewer"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configDir := "."
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		logging.Setup(os.Stderr, nil, "info")
		logging.Logger.Error().Err(err).Str("dir", configDir).Msg("invalid configuration")
		os.Exit(1)
	}

	var logFile *os.File
	if cfg.LogFile != "" {
		logFile, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logging.Setup(os.Stderr, nil, cfg.LogLevel)
			logging.Logger.Error().Err(err).Str("path", cfg.LogFile).Msg("cannot open log file")
			os.Exit(1)
		}
		defer logFile.Close()
	}
	if logFile != nil {
		logging.Setup(os.Stdout, logFile, cfg.LogLevel)
	} else {
		logging.Setup(os.Stdout, nil, cfg.LogLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := viewer.NewApp(cfg)
	if err := app.Run(ctx); err != nil {
		logging.Logger.Error().Err(err).Msg("viewer stopped")
		stop()
		os.Exit(1)
	}
}

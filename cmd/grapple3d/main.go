package main

import (
	"flag"
	"fmt"
	"os"

	"grapple3d/internal/config"
	"grapple3d/internal/game"
	"grapple3d/internal/logging"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "grapple3d: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	scenePath := flag.String("scene", "", "JSON scene file, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.String("config", *configPath),
		zap.String("scene", cfg.Scene),
		zap.Int("checkpoints", len(cfg.Checkpoints)))

	return game.New(cfg, logger).Run()
}

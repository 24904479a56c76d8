package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tile-roguelike/internal/config"
	"tile-roguelike/internal/game"
	"tile-roguelike/internal/logging"
	"tile-roguelike/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config (defaults when empty)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer telemetry.Start(ctx, cfg.Telemetry.Enabled, logger)()

	state, err := game.NewState(ctx, cfg, logger)
	if err != nil {
		logger.Error("new run", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g, err := game.NewTerminal(state, cfg.Game.FrameInterval, logger)
	if err != nil {
		logger.Error("terminal setup", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game loop", "error", err)
	}
}

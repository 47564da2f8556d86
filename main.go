package main

import (
	"log/slog"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/rose-visualization/internal/config"
	"github.com/iburimskiy/rose-visualization/internal/game"
	"github.com/iburimskiy/rose-visualization/internal/rose"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := game.Run(rose.LatticeVariant()); err != nil {
		slog.Error("rose curves stopped", "error", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.Title))
		os.Exit(1)
	}
}

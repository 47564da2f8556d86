// Command rose-polar morphs between random rose curves on a polar grid.
package main

import (
	"log/slog"
	"math/rand/v2"
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

	seed := rand.Uint64()
	slog.Info("random walk seeded", "seed", seed)

	if err := game.Run(rose.RandomVariant(seed)); err != nil {
		slog.Error("rose curves stopped", "error", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.Title))
		os.Exit(1)
	}
}

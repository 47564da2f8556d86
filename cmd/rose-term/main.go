// Command rose-term walks the rose lattice in the terminal using braille dots.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/iburimskiy/rose-visualization/internal/rose"
	"github.com/iburimskiy/rose-visualization/internal/term"
)

func main() {
	// The screen owns the terminal while running; logs are replayed after.
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	err := term.Run(rose.LatticeVariant())
	os.Stderr.Write(logs.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "rose-term: %v\n", err)
		os.Exit(1)
	}
}

package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/rose-visualization/internal/config"
	"github.com/iburimskiy/rose-visualization/internal/harmonic"
	"github.com/iburimskiy/rose-visualization/internal/plot"
	"github.com/iburimskiy/rose-visualization/internal/rose"
)

// game is the ebiten front end. Update runs at ebiten's default rate and
// ticks the driver once per elapsed interval, Draw paints the last frame.
type game struct {
	driver  *rose.Driver
	frame   rose.Frame
	player  *harmonic.Player
	polar   bool
	started time.Time
	pacer   rose.Pacer
	last    time.Time

	palette  plot.Palette
	viewport plot.Viewport

	// stroke scratch
	brush    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	labels   map[string]*ebiten.Image
}

func newGame(driver *rose.Driver, player *harmonic.Player) *game {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	f := driver.Frame()
	now := time.Now()
	return &game{
		driver:   driver,
		frame:    f,
		player:   player,
		polar:    f.Curve.Coords == rose.Polar,
		started:  now,
		pacer:    rose.Pacer{Interval: driver.Config().Interval, MaxBurst: config.MaxCatchUp},
		last:     now,
		palette:  plot.Sepia(),
		viewport: plot.Fit(config.WindowWidth, config.WindowHeight, config.PlotMargin, config.PlotExtent),
		brush:    white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		labels:   map[string]*ebiten.Image{},
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Now()
	due := g.pacer.Advance(now.Sub(g.last))
	g.last = now

	for range due {
		g.frame = g.driver.Tick()
		if g.frame.Advanced {
			s := g.driver.State()
			slog.Debug("transition complete",
				"tick", g.frame.Tick,
				"reached", s.Current.String(),
				"next", s.Target.String())
		}
	}
	if due > 0 {
		g.player.Follow(g.frame)
	}
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Run opens the window and animates cfg until the window is closed.
func Run(cfg rose.Config) error {
	driver, err := rose.NewDriver(cfg)
	if err != nil {
		return err
	}

	var player *harmonic.Player
	if config.AudioEnabled {
		player, err = harmonic.Start()
		if err != nil {
			// Non-fatal, the curves run silent
			slog.Warn("audio unavailable", "error", err)
		}
	}
	defer player.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s walk - Esc/Q: Quit", config.Title, cfg.Name))

	slog.Info("animation started",
		"variant", cfg.Name,
		"interval", cfg.Interval,
		"transition_frames", cfg.TransitionFrames,
		"pause_frames", cfg.PauseFrames,
		"start", driver.State().Current.String())

	g := newGame(driver, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run %s: %w", cfg.Name, err)
	}

	slog.Info("animation closed", "ticks", g.frame.Tick, "elapsed", plot.FormatDuration(time.Since(g.started)))
	return nil
}

package term

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/rose-visualization/internal/plot"
	"github.com/iburimskiy/rose-visualization/internal/rose"
)

// Run takes over the terminal and animates cfg until Esc, q or Ctrl-C.
func Run(cfg rose.Config) error {
	driver, err := rose.NewDriver(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	return run(screen, driver, cfg)
}

func run(screen tcell.Screen, driver *rose.Driver, cfg rose.Config) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	slog.Info("animation started",
		"variant", cfg.Name,
		"interval", cfg.Interval,
		"transition_frames", cfg.TransitionFrames,
		"pause_frames", cfg.PauseFrames)

	r := NewRenderer(driver)
	loop(screen, r, cfg.Interval)

	slog.Info("animation closed", "ticks", r.Frame().Tick)
	return nil
}

func loop(screen tcell.Screen, r *Renderer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pump(screen, events, done)

	started := time.Now()
	draw := func() {
		r.Draw(screen, plot.Status(r.Frame(), time.Since(started))+"  esc/q quits")
		screen.Show()
	}
	draw()

	for {
		select {
		case ev, ok := <-events:
			if !ok || quits(ev) {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				draw()
			}

		case <-ticker.C:
			r.Step()
			draw()
		}
	}
}

// pump forwards screen events until the screen is finalized or done closes.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func quits(ev tcell.Event) bool {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return k.Key() == tcell.KeyEscape || k.Key() == tcell.KeyCtrlC ||
		(k.Key() == tcell.KeyRune && (k.Rune() == 'q' || k.Rune() == 'Q'))
}

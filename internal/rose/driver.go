package rose

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("rose: invalid config")

// Config assembles a Driver.
type Config struct {
	Name     string
	Sampler  Sampler
	Selector Selector
	Easing   Easing

	// TransitionFrames is the number of ticks spent moving between pairs.
	TransitionFrames int
	// PauseFrames is the number of ticks a reached pair is held on screen.
	PauseFrames int
	// Interval is the wall-clock time between ticks, used by renderers.
	Interval time.Duration
}

// Validate checks the config for values that would stall or divide by zero.
func (c Config) Validate() error {
	switch {
	case c.Sampler == nil:
		return fmt.Errorf("%w: no sampler", ErrInvalidConfig)
	case c.Selector == nil:
		return fmt.Errorf("%w: no selector", ErrInvalidConfig)
	case c.Easing == nil:
		return fmt.Errorf("%w: no easing", ErrInvalidConfig)
	case c.TransitionFrames <= 0:
		return fmt.Errorf("%w: transition frames %d", ErrInvalidConfig, c.TransitionFrames)
	case c.PauseFrames < 0:
		return fmt.Errorf("%w: pause frames %d", ErrInvalidConfig, c.PauseFrames)
	case c.Interval <= 0:
		return fmt.Errorf("%w: interval %v", ErrInvalidConfig, c.Interval)
	}
	for _, part := range []any{c.Sampler, c.Selector} {
		if v, ok := part.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// State is the transition bookkeeping of a Driver.
type State struct {
	Current Pair
	Target  Pair
	// Step counts ticks since Current was last assigned.
	Step             int
	TransitionFrames int
	PauseFrames      int
}

// Progress is Step over TransitionFrames. It exceeds 1 while paused.
func (s State) Progress() float64 {
	return float64(s.Step) / float64(s.TransitionFrames)
}

// Frame is what a Driver hands to the renderer on every tick.
type Frame struct {
	Tick    uint64
	Curve   Curve
	Params  Pair
	Current Pair
	Target  Pair

	Progress float64
	// Paused frames repeat the previous curve untouched.
	Paused bool
	// Advanced is set on the tick where Current became the old Target.
	Advanced bool
}

// Equation is the label for the interpolated pair.
func (f Frame) Equation() string {
	return Equation(f.Params)
}

// Driver moves between rose parameter pairs one tick at a time.
// It is not safe for concurrent use; the render loop owns it.
type Driver struct {
	cfg   Config
	state State
	tick  uint64
	last  Frame
}

// NewDriver validates cfg, picks the starting pair and its first target and
// samples the starting curve.
func NewDriver(cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	first := cfg.Selector.First()
	d := &Driver{
		cfg: cfg,
		state: State{
			Current:          first,
			Target:           cfg.Selector.Next(first),
			TransitionFrames: cfg.TransitionFrames,
			PauseFrames:      cfg.PauseFrames,
		},
	}
	d.last = d.render()
	return d, nil
}

// Config returns the configuration the driver was built from.
func (d *Driver) Config() Config {
	return d.cfg
}

// State returns a copy of the transition state.
func (d *Driver) State() State {
	return d.state
}

// Frame returns the most recently emitted frame.
func (d *Driver) Frame() Frame {
	return d.last
}

// Tick advances the animation by one frame.
func (d *Driver) Tick() Frame {
	d.tick++
	s := &d.state
	s.Step++

	advanced := false
	if s.Step >= s.TransitionFrames {
		if s.Step < s.TransitionFrames+s.PauseFrames {
			d.last.Tick = d.tick
			d.last.Progress = s.Progress()
			d.last.Paused = true
			d.last.Advanced = false
			return d.last
		}

		s.Current = s.Target
		s.Target = d.cfg.Selector.Next(s.Current)
		s.Step = 0
		advanced = true
	}

	d.last = d.render()
	d.last.Advanced = advanced
	return d.last
}

func (d *Driver) render() Frame {
	s := d.state
	p := Lerp(s.Current, s.Target, d.cfg.Easing(s.Progress()))
	return Frame{
		Tick:     d.tick,
		Curve:    d.cfg.Sampler.Sample(p),
		Params:   p,
		Current:  s.Current,
		Target:   s.Target,
		Progress: s.Progress(),
	}
}

package rose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// scripted hands out a fixed list of targets and records each request.
type scripted struct {
	first   Pair
	targets []Pair
	calls   []Pair
}

func (s *scripted) First() Pair { return s.first }

func (s *scripted) Next(current Pair) Pair {
	s.calls = append(s.calls, current)
	p := s.targets[0]
	if len(s.targets) > 1 {
		s.targets = s.targets[1:]
	}
	return p
}

type DriverSuite struct {
	suite.Suite
}

func (s *DriverSuite) config(sel Selector, frames, pause int) Config {
	return Config{
		Name:             "test",
		Sampler:          CartesianSampler{Samples: 16},
		Selector:         sel,
		Easing:           Cubic,
		TransitionFrames: frames,
		PauseFrames:      pause,
		Interval:         30 * time.Millisecond,
	}
}

func (s *DriverSuite) TestInitialState() {
	d, err := NewDriver(LatticeVariant())
	s.Require().NoError(err)

	st := d.State()
	s.Equal(P(1, 1), st.Current)
	s.Equal(P(1, 2), st.Target)
	s.Zero(st.Step)

	f := d.Frame()
	s.Equal(P(1, 1), f.Params, "starting frame shows the starting pair")
	s.Len(f.Curve.Points, 4000)
	s.Equal("r = cos(1.00/1.00 theta)", f.Equation())
}

func (s *DriverSuite) TestAdvancesAfterTransitionFrames() {
	sel := &scripted{first: P(1, 1), targets: []Pair{P(1, 8), P(4, 2)}}
	d, err := NewDriver(s.config(sel, 100, 0))
	s.Require().NoError(err)
	s.Require().Len(sel.calls, 1)

	for i := 1; i < 100; i++ {
		f := d.Tick()
		s.Require().False(f.Advanced, "tick %d", i)
		s.Require().Equal(P(1, 1), d.State().Current, "tick %d", i)
	}

	f := d.Tick()
	s.True(f.Advanced)
	s.Equal(P(1, 8), d.State().Current)
	s.Equal(P(4, 2), d.State().Target)
	s.Zero(d.State().Step)
	s.Equal(P(1, 8), f.Params, "the new transition starts at the reached pair")
	s.Equal([]Pair{P(1, 1), P(1, 8)}, sel.calls, "a new target is requested once")
	s.Equal(uint64(100), f.Tick)
}

func (s *DriverSuite) TestInterpolates() {
	sel := &scripted{first: P(1, 1), targets: []Pair{P(3, 5)}}
	d, err := NewDriver(s.config(sel, 4, 0))
	s.Require().NoError(err)

	d.Tick()
	f := d.Tick()
	s.Equal(0.5, f.Progress)
	s.InDelta(2, f.Params.M, 1e-12, "cubic ease is 0.5 at the midpoint")
	s.InDelta(3, f.Params.N, 1e-12)
	s.Equal(f.Params, f.Curve.Params)
}

func (s *DriverSuite) TestProgressNonDecreasing() {
	d, err := NewDriver(s.config(LatticeWalk{Min: 1, Max: 8}, 20, 5))
	s.Require().NoError(err)

	prev := d.State().Progress()
	for i := 0; i < 500; i++ {
		f := d.Tick()
		if f.Advanced {
			s.Require().Zero(d.State().Progress(), "progress resets with current")
		} else {
			s.Require().GreaterOrEqual(d.State().Progress(), prev, "tick %d", i)
		}
		prev = d.State().Progress()
	}
}

func (s *DriverSuite) TestPauseHoldsCurve() {
	const frames, pause = 10, 4
	d, err := NewDriver(s.config(LatticeWalk{Min: 1, Max: 8}, frames, pause))
	s.Require().NoError(err)

	var last Frame
	for range frames - 1 {
		last = d.Tick()
	}
	s.Require().False(last.Paused)

	for i := 0; i < pause; i++ {
		f := d.Tick()
		s.Require().True(f.Paused, "pause tick %d", i)
		s.Require().Equal(last.Curve, f.Curve, "pause tick %d", i)
		s.Require().Same(&last.Curve.Points[0], &f.Curve.Points[0], "no resample on pause tick %d", i)
		s.Require().Equal(last.Params, f.Params)
		s.Require().GreaterOrEqual(f.Progress, 1.0)
	}

	f := d.Tick()
	s.False(f.Paused)
	s.True(f.Advanced)
	s.Equal(P(1, 2), d.State().Current)
	s.Equal(P(1, 3), d.State().Target)
}

func (s *DriverSuite) TestLatticeCycle() {
	cfg := LatticeVariant()
	cfg.Sampler = CartesianSampler{Samples: 8}
	d, err := NewDriver(cfg)
	s.Require().NoError(err)

	perPair := cfg.TransitionFrames + cfg.PauseFrames
	advances := 0
	for range 64 * perPair {
		if d.Tick().Advanced {
			advances++
		}
	}
	s.Equal(64, advances)
	s.Equal(P(1, 1), d.State().Current, "the walk wraps after 64 pairs")
}

func (s *DriverSuite) TestRandomVariantIsReproducible() {
	a, err := NewDriver(RandomVariant(99))
	s.Require().NoError(err)
	b, err := NewDriver(RandomVariant(99))
	s.Require().NoError(err)

	for range 350 {
		fa, fb := a.Tick(), b.Tick()
		s.Require().Equal(fa.Params, fb.Params)
	}
	s.Equal(a.State(), b.State())
	s.NotEqual(a.State().Current.M, a.State().Current.N)
}

func (s *DriverSuite) TestInvalidConfig() {
	valid := s.config(LatticeWalk{Min: 1, Max: 8}, 10, 0)

	broken := map[string]func(c *Config){
		"no sampler":     func(c *Config) { c.Sampler = nil },
		"no selector":    func(c *Config) { c.Selector = nil },
		"no easing":      func(c *Config) { c.Easing = nil },
		"zero frames":    func(c *Config) { c.TransitionFrames = 0 },
		"negative pause": func(c *Config) { c.PauseFrames = -1 },
		"zero interval":  func(c *Config) { c.Interval = 0 },
		"lattice at 0":   func(c *Config) { c.Selector = LatticeWalk{Min: 0, Max: 8} },
		"single value":   func(c *Config) { c.Selector = NewRandomDraw(2, 2, 1) },
		"negative curve": func(c *Config) { c.Sampler = CartesianSampler{Samples: -1} },
		"one point":      func(c *Config) { c.Sampler = PolarSampler{Samples: 1} },
	}
	for name, mutate := range broken {
		c := valid
		mutate(&c)
		_, err := NewDriver(c)
		s.Require().ErrorIs(err, ErrInvalidConfig, name)
	}
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

func TestVariantsValidate(t *testing.T) {
	require.NoError(t, LatticeVariant().Validate())
	require.NoError(t, RandomVariant(1).Validate())
}

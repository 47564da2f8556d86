package rose

import (
	"github.com/iburimskiy/rose-visualization/internal/config"
)

// LatticeVariant walks the whole [1,8]² lattice in Cartesian form, easing
// with Quintic and resting on every reached pair.
func LatticeVariant() Config {
	return Config{
		Name:             "lattice",
		Sampler:          CartesianSampler{Samples: config.CartesianSamples},
		Selector:         LatticeWalk{Min: config.LatticeMin, Max: config.LatticeMax},
		Easing:           Quintic,
		TransitionFrames: config.CartesianTransitionFrames,
		PauseFrames:      config.CartesianPauseFrames,
		Interval:         config.CartesianInterval,
	}
}

// RandomVariant jumps between random distinct pairs in polar form, easing
// with Cubic and never pausing.
func RandomVariant(seed uint64) Config {
	return Config{
		Name:             "random",
		Sampler:          PolarSampler{Samples: config.PolarSamples},
		Selector:         NewRandomDraw(config.LatticeMin, config.LatticeMax, seed),
		Easing:           Cubic,
		TransitionFrames: config.PolarTransitionFrames,
		Interval:         config.PolarInterval,
	}
}

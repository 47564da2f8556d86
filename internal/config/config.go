package config

import "time"

const (
	WindowWidth  = 800
	WindowHeight = 800

	Title    = "Rose Curves"
	Subtitle = "A Study of Mathematical Harmonics"

	// Parameter lattice, inclusive on both ends
	LatticeMin = 1
	LatticeMax = 8

	// Cartesian lattice walk
	CartesianSamples          = 4000
	CartesianTransitionFrames = 180
	CartesianPauseFrames      = 30
	CartesianInterval         = 45 * time.Millisecond

	// Polar random walk
	PolarSamples          = 1000
	PolarTransitionFrames = 100
	PolarInterval         = 30 * time.Millisecond

	// Plot window in curve units
	PlotExtent = 1.01
	PlotMargin = 0.1

	// Styling
	Background = "#FDF5E6"
	Ink        = "#8B4513"
	Rule       = "#8B7355"
	RuleAlpha  = 0.3
	LineWidth  = 2.5
	RuleWidth  = 0.5

	// Polar grid
	GridRings  = 4
	GridSpokes = 8

	// Harmonic drone
	AudioEnabled    = true
	SampleRate      = 44100
	BaseFrequency   = 220.0
	Volume          = 0.12
	ScopeRingSize   = 4096
	ScopeSamples    = 512
	ScopeHeight     = 32
	SmoothingFactor = 0.995

	// MaxCatchUp bounds the driver ticks run by one ebiten update after a stall.
	MaxCatchUp = 4
)

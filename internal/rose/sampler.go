package rose

import (
	"fmt"
	"math"
)

// Coords tells how the points of a Curve are to be read.
type Coords int

const (
	// Cartesian points are (x, y).
	Cartesian Coords = iota
	// Polar points are (θ, r).
	Polar
)

func (c Coords) String() string {
	switch c {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	default:
		return "unknown"
	}
}

// Point is a 2D sample. Its meaning depends on the Curve's Coords.
type Point struct {
	X, Y float64
}

// Curve is one fully sampled rose. It is rebuilt on every tick.
type Curve struct {
	Params Pair
	Coords Coords
	// Sweep is the angular range covered, starting at θ = 0.
	Sweep  float64
	Points []Point
}

// XY returns the curve in Cartesian coordinates.
func (c Curve) XY() []Point {
	if c.Coords == Cartesian {
		return c.Points
	}
	out := make([]Point, len(c.Points))
	for i, p := range c.Points {
		sin, cos := math.Sincos(p.X)
		out[i] = Point{X: p.Y * cos, Y: p.Y * sin}
	}
	return out
}

// A Sampler turns a parameter pair into a curve.
type Sampler interface {
	Sample(p Pair) Curve
}

// CartesianSampler sweeps θ over 2π·lcm(round(m), round(n)) so that integer
// pairs close exactly. The radius itself uses the unrounded ratio, which
// keeps interpolated frames moving smoothly between closed shapes.
type CartesianSampler struct {
	Samples int
}

func (s CartesianSampler) Sample(p Pair) Curve {
	m, n := p.Round()
	sweep := 2 * math.Pi * float64(LCM(m, n))
	k := p.Ratio()

	pts := make([]Point, s.Samples)
	for i := range pts {
		theta := linspace(sweep, i, s.Samples)
		r := math.Cos(k * theta)
		sin, cos := math.Sincos(theta)
		pts[i] = Point{X: r * cos, Y: r * sin}
	}
	return Curve{Params: p, Coords: Cartesian, Sweep: sweep, Points: pts}
}

// PolarSampler always sweeps one full turn and returns (θ, r) pairs.
// Ratios whose period exceeds 2π are shown only in part.
type PolarSampler struct {
	Samples int
}

func (s PolarSampler) Sample(p Pair) Curve {
	sweep := 2 * math.Pi
	k := p.Ratio()

	pts := make([]Point, s.Samples)
	for i := range pts {
		theta := linspace(sweep, i, s.Samples)
		pts[i] = Point{X: theta, Y: math.Cos(k * theta)}
	}
	return Curve{Params: p, Coords: Polar, Sweep: sweep, Points: pts}
}

// Validate rejects sample counts too small to trace a curve.
func (s CartesianSampler) Validate() error {
	return validateSamples(s.Samples)
}

// Validate rejects sample counts too small to trace a curve.
func (s PolarSampler) Validate() error {
	return validateSamples(s.Samples)
}

func validateSamples(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: %d samples", ErrInvalidConfig, n)
	}
	return nil
}

// linspace returns the i-th of n evenly spaced values over [0, end],
// both ends included.
func linspace(end float64, i, n int) float64 {
	if n < 2 {
		return 0
	}
	if i == n-1 {
		return end
	}
	return end * float64(i) / float64(n-1)
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns |a·b| / gcd(a, b), or 0 when either is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

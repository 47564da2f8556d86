package plot

import (
	"math"

	"github.com/iburimskiy/rose-visualization/internal/rose"
)

// Viewport maps the square [-Extent, Extent]² of curve space onto a square
// screen region. Screen y grows downwards.
type Viewport struct {
	CenterX, CenterY float64

	// HalfSize is half the side of the screen square, in pixels or cells.
	HalfSize float64
	Extent   float64
	// Aspect stretches x, for surfaces whose cells are not square.
	Aspect float64
}

// Fit centres the largest square that fits w×h after removing margin (a
// fraction of the shorter side) on every edge.
func Fit(w, h int, margin, extent float64) Viewport {
	side := math.Min(float64(w), float64(h))
	return Viewport{
		CenterX:  float64(w) / 2,
		CenterY:  float64(h) / 2,
		HalfSize: side * (1 - 2*margin) / 2,
		Extent:   extent,
		Aspect:   1,
	}
}

// Scale is screen units per curve unit along y.
func (v Viewport) Scale() float64 {
	return v.HalfSize / v.Extent
}

// Project maps a Cartesian curve point to screen coordinates.
func (v Viewport) Project(p rose.Point) (float64, float64) {
	s := v.Scale()
	return v.CenterX + p.X*s*v.Aspect, v.CenterY - p.Y*s
}

// Project32 is Project for float32 drawing APIs.
func (v Viewport) Project32(p rose.Point) (float32, float32) {
	x, y := v.Project(p)
	return float32(x), float32(y)
}

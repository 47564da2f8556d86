package plot

import (
	"math"

	"github.com/iburimskiy/rose-visualization/internal/rose"
)

// Segment is a straight rule in curve space.
type Segment struct {
	A, B rose.Point
}

// Axes returns the horizontal and vertical rules through the origin.
func Axes(extent float64) []Segment {
	return []Segment{
		{A: rose.Point{X: -extent}, B: rose.Point{X: extent}},
		{A: rose.Point{Y: -extent}, B: rose.Point{Y: extent}},
	}
}

// PolarGrid returns evenly spaced ring radii in (0, 1] and spokes from the
// origin to the unit circle, the first along θ = 0.
func PolarGrid(rings, spokes int) (radii []float64, rays []Segment) {
	radii = make([]float64, rings)
	for i := range radii {
		radii[i] = float64(i+1) / float64(rings)
	}
	rays = make([]Segment, spokes)
	for i := range rays {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(spokes))
		rays[i] = Segment{B: rose.Point{X: cos, Y: sin}}
	}
	return radii, rays
}

// Circle approximates a circle of radius r about the origin with n chords.
func Circle(r float64, n int) []rose.Point {
	pts := make([]rose.Point, n+1)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = rose.Point{X: r * cos, Y: r * sin}
	}
	return pts
}

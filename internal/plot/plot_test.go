package plot

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/rose-visualization/internal/rose"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FDF5E6")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xfd, G: 0xf5, B: 0xe6, A: 0xff}, c)

	c, err = ParseHex("8B451380")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)
	assert.LessOrEqual(t, c.R, c.A, "premultiplied")

	for _, bad := range []string{"", "#123", "#GGGGGG", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestSepia(t *testing.T) {
	p := Sepia()
	assert.Equal(t, color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}, p.Ink)
	assert.Equal(t, uint8(77), p.Rule.A, "rules sit at 30% opacity")
}

func TestOver(t *testing.T) {
	bg := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	assert.Equal(t, bg, Over(color.RGBA{}, bg))

	ink := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	assert.Equal(t, ink, Over(ink, bg))

	half := Over(WithAlpha(color.RGBA{A: 255}, 0.5), bg)
	assert.InDelta(t, 100, int(half.R), 1)
}

func TestViewport(t *testing.T) {
	v := Fit(800, 600, 0.1, 1)
	assert.Equal(t, 400.0, v.CenterX)
	assert.Equal(t, 300.0, v.CenterY)
	assert.InDelta(t, 240, v.HalfSize, 1e-12)

	x, y := v.Project(rose.Point{X: 1, Y: 1})
	assert.InDelta(t, 640, x, 1e-12)
	assert.InDelta(t, 60, y, 1e-12, "y grows downwards")

	x, y = v.Project(rose.Point{})
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	v.Aspect = 2
	x, _ = v.Project(rose.Point{X: -0.5})
	assert.InDelta(t, 160, x, 1e-12)
}

func TestAxes(t *testing.T) {
	want := []Segment{
		{A: rose.Point{X: -1.01}, B: rose.Point{X: 1.01}},
		{A: rose.Point{Y: -1.01}, B: rose.Point{Y: 1.01}},
	}
	if d := cmp.Diff(want, Axes(1.01)); d != "" {
		t.Fatalf("axes (-want +got):\n%s", d)
	}
}

func TestPolarGrid(t *testing.T) {
	radii, rays := PolarGrid(4, 8)
	if d := cmp.Diff([]float64{0.25, 0.5, 0.75, 1}, radii); d != "" {
		t.Fatalf("radii (-want +got):\n%s", d)
	}

	require.Len(t, rays, 8)
	s := math.Sqrt2 / 2
	wantEnds := []rose.Point{{X: 1}, {X: s, Y: s}, {Y: 1}, {X: -s, Y: s}, {X: -1}, {X: -s, Y: -s}, {Y: -1}, {X: s, Y: -s}}
	gotEnds := make([]rose.Point, len(rays))
	for i, r := range rays {
		assert.Equal(t, rose.Point{}, r.A)
		gotEnds[i] = r.B
	}
	if d := cmp.Diff(wantEnds, gotEnds, approx); d != "" {
		t.Fatalf("spokes (-want +got):\n%s", d)
	}
}

func TestCircle(t *testing.T) {
	pts := Circle(0.5, 32)
	require.Len(t, pts, 33)
	for _, p := range pts {
		assert.InDelta(t, 0.5, math.Hypot(p.X, p.Y), 1e-12)
	}
	if d := cmp.Diff(pts[0], pts[32], approx); d != "" {
		t.Fatalf("circle is not closed:\n%s", d)
	}
}

func TestStatus(t *testing.T) {
	f := rose.Frame{Current: rose.P(1, 2), Target: rose.P(1, 3), Progress: 0.25}
	assert.Equal(t, "01:05  (m=1.00, n=2.00) -> (m=1.00, n=3.00)  easing  25%", Status(f, 65*time.Second))

	f.Paused = true
	f.Progress = 1.1
	assert.Equal(t, "00:00  (m=1.00, n=2.00) -> (m=1.00, n=3.00)  resting 100%", Status(f, 0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "02:03", FormatDuration(123*time.Second))
	assert.Equal(t, "61:01", FormatDuration(time.Hour+61*time.Second))
}

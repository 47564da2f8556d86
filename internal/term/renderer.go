// Package term draws rose animations on a terminal with braille dots.
package term

import (
	"image/color"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/rose-visualization/internal/config"
	"github.com/iburimskiy/rose-visualization/internal/plot"
	"github.com/iburimskiy/rose-visualization/internal/rose"
)

// Surface is the part of tcell.Screen the renderer paints on.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Rows reserved above and below the plot for labels.
const (
	headerRows = 3
	footerRows = 2
)

// Renderer paints driver frames onto a Surface.
type Renderer struct {
	driver *rose.Driver
	frame  rose.Frame
	polar  bool

	guides *Canvas
	curve  *Canvas

	paper tcell.Style
	ink   tcell.Style
	rule  tcell.Style
}

// NewRenderer prepares a renderer showing driver's current frame.
func NewRenderer(driver *rose.Driver) *Renderer {
	p := plot.Sepia()
	bg := rgb(p.Background)
	f := driver.Frame()
	return &Renderer{
		driver: driver,
		frame:  f,
		polar:  f.Curve.Coords == rose.Polar,
		guides: NewCanvas(0, 0),
		curve:  NewCanvas(0, 0),
		paper:  tcell.StyleDefault.Background(bg).Foreground(rgb(p.Ink)),
		ink:    tcell.StyleDefault.Background(bg).Foreground(rgb(p.Ink)).Bold(true),
		rule:   tcell.StyleDefault.Background(bg).Foreground(rgb(plot.Over(p.Rule, p.Background))),
	}
}

// Frame returns the frame being shown.
func (r *Renderer) Frame() rose.Frame {
	return r.frame
}

// Step advances the driver by one tick.
func (r *Renderer) Step() rose.Frame {
	r.frame = r.driver.Tick()
	if r.frame.Advanced {
		s := r.driver.State()
		slog.Debug("transition complete",
			"tick", r.frame.Tick,
			"reached", s.Current.String(),
			"next", s.Target.String())
	}
	return r.frame
}

// Draw paints the whole surface. The caller shows it.
func (r *Renderer) Draw(s Surface, status string) {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, r.paper)
		}
	}

	plotRows := h - headerRows - footerRows
	if plotRows > 0 && w > 0 {
		r.drawPlot(s, w, plotRows)
	}

	putCentered(s, 0, w, config.Title, r.ink)
	eq := r.frame.Equation()
	if r.polar {
		putCentered(s, 1, w, config.Subtitle, r.paper)
		putCentered(s, 2, w, eq, r.paper)
	} else {
		putString(s, w-len(eq)-1, h-2, eq, r.paper)
	}
	putString(s, 1, h-1, status, r.rule)
}

func (r *Renderer) drawPlot(s Surface, w, rows int) {
	r.guides.Resize(w, rows)
	r.curve.Resize(w, rows)

	dw, dh := r.curve.Dots()
	vp := plot.Fit(dw, dh, config.PlotMargin/2, config.PlotExtent)

	if r.polar {
		radii, rays := plot.PolarGrid(config.GridRings, config.GridSpokes)
		for _, rad := range radii {
			polyline(r.guides, vp, plot.Circle(rad, 96))
		}
		for _, ray := range rays {
			polyline(r.guides, vp, []rose.Point{ray.A, ray.B})
		}
	} else {
		for _, axis := range plot.Axes(config.PlotExtent) {
			polyline(r.guides, vp, []rose.Point{axis.A, axis.B})
		}
	}
	polyline(r.curve, vp, r.frame.Curve.XY())

	cols, lines := r.curve.Cells()
	for cy := 0; cy < lines; cy++ {
		for cx := 0; cx < cols; cx++ {
			if ch := r.curve.Rune(cx, cy); ch != 0 {
				s.SetContent(cx, headerRows+cy, ch, nil, r.ink)
			} else if ch := r.guides.Rune(cx, cy); ch != 0 {
				s.SetContent(cx, headerRows+cy, ch, nil, r.rule)
			}
		}
	}
}

func polyline(c *Canvas, vp plot.Viewport, pts []rose.Point) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := vp.Project(pts[i-1])
		x1, y1 := vp.Project(pts[i])
		c.Line(x0, y0, x1, y1)
	}
}

func putString(s Surface, x, y int, str string, style tcell.Style) {
	for i, ch := range []rune(str) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}

func putCentered(s Surface, y, w int, str string, style tcell.Style) {
	putString(s, (w-len([]rune(str)))/2, y, str, style)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

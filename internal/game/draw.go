package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/rose-visualization/internal/config"
	"github.com/iburimskiy/rose-visualization/internal/plot"
	"github.com/iburimskiy/rose-visualization/internal/rose"
)

const (
	glyphWidth  = 6
	glyphHeight = 16
	strokeChunk = 500
)

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	if g.polar {
		g.drawPolarGrid(screen)
	} else {
		g.drawAxes(screen)
	}
	g.drawCurve(screen, g.frame.Curve.XY())
	g.drawScope(screen)
	g.drawLabels(screen)
}

func (g *game) drawAxes(screen *ebiten.Image) {
	for _, s := range plot.Axes(config.PlotExtent) {
		g.drawSegment(screen, s)
	}
}

func (g *game) drawPolarGrid(screen *ebiten.Image) {
	radii, rays := plot.PolarGrid(config.GridRings, config.GridSpokes)
	cx, cy := float32(g.viewport.CenterX), float32(g.viewport.CenterY)
	for _, r := range radii {
		vector.StrokeCircle(screen, cx, cy, float32(r*g.viewport.Scale()), config.RuleWidth, g.palette.Rule, true)
	}
	for _, s := range rays {
		g.drawSegment(screen, s)
	}
}

func (g *game) drawSegment(screen *ebiten.Image, s plot.Segment) {
	x1, y1 := g.viewport.Project32(s.A)
	x2, y2 := g.viewport.Project32(s.B)
	vector.StrokeLine(screen, x1, y1, x2, y2, config.RuleWidth, g.palette.Rule, true)
}

// drawCurve strokes the sampled rose in chunks small enough for 16-bit
// indices; consecutive chunks share an end point.
func (g *game) drawCurve(screen *ebiten.Image, pts []rose.Point) {
	for start := 0; start < len(pts)-1; start += strokeChunk {
		end := min(start+strokeChunk+1, len(pts))
		g.strokePolyline(screen, pts[start:end])
	}
}

func (g *game) strokePolyline(screen *ebiten.Image, pts []rose.Point) {
	var path vector.Path
	x, y := g.viewport.Project32(pts[0])
	path.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = g.viewport.Project32(p)
		path.LineTo(x, y)
	}

	op := &vector.StrokeOptions{
		Width:    config.LineWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	g.vertices, g.indices = path.AppendVerticesAndIndicesForStroke(g.vertices[:0], g.indices[:0], op)
	paintVertices(g.vertices, g.palette.Ink)

	screen.DrawTriangles(g.vertices, g.indices, g.brush, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawScope traces the drone's recent output along the bottom edge.
func (g *game) drawScope(screen *ebiten.Image) {
	samples := g.player.Scope(config.ScopeSamples)
	if len(samples) < 2 {
		return
	}

	const margin = 12
	width := float32(config.WindowWidth - 2*margin)
	mid := float32(config.WindowHeight - margin - config.ScopeHeight/2)
	amp := float32(config.ScopeHeight/2) / float32(config.Volume)
	step := width / float32(len(samples)-1)
	ink := plot.WithAlpha(g.palette.Ink, 0.5)

	for i := 1; i < len(samples); i++ {
		x1 := margin + step*float32(i-1)
		x2 := margin + step*float32(i)
		y1 := mid - float32(samples[i-1])*amp
		y2 := mid - float32(samples[i])*amp
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, ink, true)
	}
}

func (g *game) drawLabels(screen *ebiten.Image) {
	ink := g.palette.Ink
	g.printAt(screen, "title", config.Title, centered(config.Title, config.WindowWidth), 24, ink)

	eq := g.frame.Equation()
	if g.polar {
		g.printAt(screen, "subtitle", config.Subtitle, centered(config.Subtitle, config.WindowWidth), 44, ink)
		g.printAt(screen, "equation", eq, centered(eq, config.WindowWidth), 64, ink)
	} else {
		top := int(g.viewport.CenterY + g.viewport.HalfSize)
		right := int(g.viewport.CenterX + g.viewport.HalfSize)
		g.printAt(screen, "equation", eq, right-textWidth(eq), top+8, ink)
	}

	status := plot.Status(g.frame, time.Since(g.started))
	g.printAt(screen, "status", status, 12, 4, plot.WithAlpha(ink, 0.6))
}

// printAt draws debug text in clr. The debug font is white, so each label is
// printed onto its own layer and tinted on the way to the screen.
func (g *game) printAt(screen *ebiten.Image, slot, s string, x, y int, clr color.Color) {
	w := textWidth(s) + glyphWidth
	layer := g.labels[slot]
	if layer == nil || layer.Bounds().Dx() < w {
		if layer != nil {
			layer.Deallocate()
		}
		layer = ebiten.NewImage(w, glyphHeight)
		g.labels[slot] = layer
	}
	layer.Clear()
	ebitenutil.DebugPrint(layer, s)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(layer, op)
}

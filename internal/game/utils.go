package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// paintVertices sets every vertex to the premultiplied colour c.
func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}

func textWidth(s string) int {
	return len(s) * glyphWidth
}

func centered(s string, width int) int {
	return (width - textWidth(s)) / 2
}

package term

import "math"

// Canvas is a grid of braille cells, each holding 2×4 dots.
type Canvas struct {
	w, h int
	dots []uint8
}

// brailleBits[row][col] is the dot's bit in the U+2800 block.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// NewCanvas returns an empty canvas of w×h cells.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize changes the cell size and clears the canvas.
func (c *Canvas) Resize(w, h int) {
	c.w, c.h = max(w, 0), max(h, 0)
	if cap(c.dots) >= c.w*c.h {
		c.dots = c.dots[:c.w*c.h]
	} else {
		c.dots = make([]uint8, c.w*c.h)
	}
	c.Clear()
}

func (c *Canvas) Clear() {
	clear(c.dots)
}

// Cells returns the size in cells.
func (c *Canvas) Cells() (int, int) {
	return c.w, c.h
}

// Dots returns the size in dots.
func (c *Canvas) Dots() (int, int) {
	return c.w * 2, c.h * 4
}

// Set lights the dot at (x, y). Dots off the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.w*2 || y >= c.h*4 {
		return
	}
	c.dots[(y/4)*c.w+x/2] |= brailleBits[y%4][x%2]
}

// Line lights the dots between two points given in dot units.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		c.Set(int(math.Floor(x0)), int(math.Floor(y0)))
		return
	}
	dx := (x1 - x0) / float64(steps)
	dy := (y1 - y0) / float64(steps)
	for i := 0; i <= steps; i++ {
		c.Set(int(math.Floor(x0+dx*float64(i))), int(math.Floor(y0+dy*float64(i))))
	}
}

// Rune returns the braille glyph of a cell, or 0 when no dot is lit.
func (c *Canvas) Rune(cx, cy int) rune {
	if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return 0
	}
	bits := c.dots[cy*c.w+cx]
	if bits == 0 {
		return 0
	}
	return 0x2800 + rune(bits)
}

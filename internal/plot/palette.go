// Package plot holds the renderer-neutral geometry and styling shared by the
// window and terminal front ends.
package plot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/iburimskiy/rose-visualization/internal/config"
)

// Palette is the set of colours a renderer paints with.
type Palette struct {
	Background color.RGBA
	Ink        color.RGBA
	Rule       color.RGBA
}

// Sepia is the paper-and-ink palette.
func Sepia() Palette {
	return Palette{
		Background: mustHex(config.Background),
		Ink:        mustHex(config.Ink),
		Rule:       WithAlpha(mustHex(config.Rule), config.RuleAlpha),
	}
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA".
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("plot: bad colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("plot: bad colour %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	c := color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: 0xff}
	return WithAlpha(c, float64(uint8(v))/255), nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha scales an opaque colour to opacity a. color.RGBA is
// premultiplied, so every channel is scaled.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(float64(c.A)*a + 0.5),
	}
}

// Over composites c onto an opaque background, for surfaces without blending.
func Over(c, bg color.RGBA) color.RGBA {
	inv := 1 - float64(c.A)/255
	return color.RGBA{
		R: uint8(float64(c.R) + float64(bg.R)*inv + 0.5),
		G: uint8(float64(c.G) + float64(bg.G)*inv + 0.5),
		B: uint8(float64(c.B) + float64(bg.B)*inv + 0.5),
		A: 0xff,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package figure

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Named colours shared by every visual.
var (
	Indigo     = mustHex("#667eea")
	Purple     = mustHex("#764ba2")
	Amethyst   = mustHex("#9b59b6")
	Blue       = mustHex("#3498db")
	DeepIndigo = mustHex("#5a67d8")
	Sky        = mustHex("#4facfe")
	Red        = mustHex("#e74c3c")
	Ink        = mustHex("#2c3e50")
	Grey       = mustHex("#666666")
	Backdrop   = mustHex("#f8f9fa")
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{A: 255}
)

// Palette returns the brush-th colour of the violin cycle. With dark set
// it returns the shade used for outlines and arrows.
func Palette(
	brush int,
	dark bool,
) (
	color.RGBA,
) {

	col := []color.RGBA{Indigo, Purple, Blue, Amethyst, DeepIndigo, Sky}
	if dark {
		darkColor := make([]color.RGBA, len(col))
		for i, c := range col {
			darkColor[i] = Shade(c, 0.85)
		}
		col = darkColor
	}

	if brush < 0 {
		brush = -brush
	}
	return col[brush%len(col)]
}

// Hex parses "#rrggbb", "#rgb" or the same without the leading '#'.
func Hex(s string) (color.RGBA, error) {
	h := "#" + strings.TrimPrefix(s, "#")
	if len(h) != 4 && len(h) != 7 {
		return color.RGBA{}, fmt.Errorf("figure: bad colour %q", s)
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("figure: bad colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func mustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Fade returns c with its opacity multiplied by alpha, clamped to [0, 1].
func Fade(c color.Color, alpha float64) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}

// Shade scales the RGB channels of c by f.
func Shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(min(max(float64(v)*f, 0), 255))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

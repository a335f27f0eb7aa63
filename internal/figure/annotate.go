package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Annotation is a text label with an optional arrow pointing at Target.
// It implements plot.Plotter.
type Annotation struct {
	Text string
	At   plotter.XY

	// Target is ignored unless Arrow is set.
	Target plotter.XY
	Arrow  bool

	TextStyle  text.Style
	ArrowStyle draw.LineStyle

	// HeadLength is the length of each barb of the arrow head.
	HeadLength vg.Length
	// Gap separates the arrow tail from the text.
	Gap vg.Length
}

// Label returns an annotation without an arrow.
func Label(txt string, x, y float64, sty text.Style) *Annotation {
	return &Annotation{Text: txt, At: plotter.XY{X: x, Y: y}, TextStyle: sty}
}

// Callout returns an annotation whose arrow runs from the text to (tx, ty).
func Callout(
	txt string,
	x, y, tx, ty float64,
	sty text.Style,
	arrow color.Color,
	width vg.Length,
) *Annotation {

	return &Annotation{
		Text:       txt,
		At:         plotter.XY{X: x, Y: y},
		Target:     plotter.XY{X: tx, Y: ty},
		Arrow:      true,
		TextStyle:  sty,
		ArrowStyle: draw.LineStyle{Color: arrow, Width: width},
		HeadLength: 4 * width,
		Gap:        vg.Points(3),
	}
}

// Plot implements plot.Plotter.
func (a *Annotation) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	at := vg.Point{X: trX(a.At.X), Y: trY(a.At.Y)}

	if a.Arrow {
		tip := vg.Point{X: trX(a.Target.X), Y: trY(a.Target.Y)}
		rect := a.TextStyle.Rectangle(a.Text).Add(at)
		tail := edge(rect, tip, a.Gap)
		c.StrokeLine2(a.ArrowStyle, tail.X, tail.Y, tip.X, tip.Y)
		c.StrokeLines(a.ArrowStyle, head(tail, tip, a.HeadLength))
	}

	c.FillText(a.TextStyle, at, a.Text)
}

// edge returns the point on the side of r facing p, pushed out by gap.
func edge(r vg.Rectangle, p vg.Point, gap vg.Length) vg.Point {
	mid := vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
	switch {
	case p.X >= r.Max.X:
		return vg.Point{X: r.Max.X + gap, Y: mid.Y}
	case p.X <= r.Min.X:
		return vg.Point{X: r.Min.X - gap, Y: mid.Y}
	case p.Y >= r.Max.Y:
		return vg.Point{X: mid.X, Y: r.Max.Y + gap}
	default:
		return vg.Point{X: mid.X, Y: r.Min.Y - gap}
	}
}

// head returns the open "->" barbs for an arrow from tail to tip.
func head(tail, tip vg.Point, length vg.Length) []vg.Point {
	d := tip.Sub(tail)
	n := vg.Length(math.Hypot(float64(d.X), float64(d.Y)))
	if n == 0 || length == 0 {
		return nil
	}
	u := d.Scale(1 / n)
	perp := vg.Point{X: -u.Y, Y: u.X}
	back := tip.Sub(u.Scale(length))
	return []vg.Point{
		back.Add(perp.Scale(length / 2)),
		tip,
		back.Sub(perp.Scale(length / 2)),
	}
}

// HLine returns a horizontal reference line at y spanning [x0, x1].
func HLine(y, x0, x1 float64, c color.Color, width vg.Length, dashed bool) (*plotter.Line, error) {
	l, err := Segment(x0, y, x1, y, c, width)
	if err != nil {
		return nil, err
	}
	if dashed {
		l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	}
	return l, nil
}

// Dots returns a scatter of filled circles at xys.
func Dots(xys plotter.XYs, c color.Color, radius vg.Length) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: radius, Shape: draw.CircleGlyph{}}
	return s, nil
}

// Crosses returns a scatter of "x" markers at xys stroked at width.
func Crosses(xys plotter.XYs, c color.Color, radius, width vg.Length) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: radius, Shape: Cross{Width: width}}
	return s, nil
}

// Cross is draw.CrossGlyph with a configurable stroke width.
type Cross struct {
	Width vg.Length
}

// DrawGlyph implements draw.GlyphDrawer.
func (x Cross) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: x.Width})
	r := sty.Radius * math.Sqrt2 / 2
	c.Stroke(vg.Path{
		{Type: vg.MoveComp, Pos: vg.Point{X: pt.X - r, Y: pt.Y - r}},
		{Type: vg.LineComp, Pos: vg.Point{X: pt.X + r, Y: pt.Y + r}},
	})
	c.Stroke(vg.Path{
		{Type: vg.MoveComp, Pos: vg.Point{X: pt.X - r, Y: pt.Y + r}},
		{Type: vg.LineComp, Pos: vg.Point{X: pt.X + r, Y: pt.Y - r}},
	})
}

// Ringed is a filled circle with a white rim of width Rim.
type Ringed struct {
	Rim vg.Length
}

// DrawGlyph implements draw.GlyphDrawer.
func (r Ringed) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.CircleGlyph{}.DrawGlyph(c, sty, pt)
	if r.Rim <= 0 {
		return
	}
	c.SetLineStyle(draw.LineStyle{Color: White, Width: r.Rim})
	p := make(vg.Path, 0, 3)
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()
	c.Stroke(p)
}

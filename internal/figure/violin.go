package figure

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/violin-visuals/internal/violin"
)

// Style controls how a violin and its box overlay are drawn. Widths given
// as float64 are in data units; vg.Length widths are stroke widths.
type Style struct {
	Fill  color.Color
	Edge  color.Color // outline colour, Fill when nil
	Alpha float64

	EdgeWidth vg.Length

	BoxWidth float64
	CapWidth float64

	BoxLine     vg.Length
	MedianLine  vg.Length
	WhiskerLine vg.Length
	CapLine     vg.Length
}

// Single is the style of a lone violin in its own panel.
func Single(c color.Color) Style {
	return Style{
		Fill:        c,
		Alpha:       0.6,
		EdgeWidth:   2.5,
		BoxWidth:    0.04,
		CapWidth:    0.05,
		BoxLine:     1.2,
		MedianLine:  1.2,
		WhiskerLine: 1,
		CapLine:     1.2,
	}
}

// Grouped is the slimmer style used when several violins share a panel.
func Grouped(c color.Color) Style {
	s := Single(c)
	s.BoxWidth = 0.03
	s.CapWidth = 0.03
	s.WhiskerLine = 0.8
	s.CapLine = 1
	return s
}

// Options configure NewViolin. Zero values pick the package defaults.
type Options struct {
	Center    float64
	Grid      []float64
	Bandwidth float64
	Width     float64
	Margin    float64
	NoBox     bool
	BoxOnly   bool
	Style     Style
}

// Violin is an estimated density silhouette with its five-number summary,
// positioned at Center on the x axis.
type Violin struct {
	Center    float64
	Sample    []float64
	Bandwidth float64
	Width     float64
	Shape     violin.Shape
	Summary   violin.Summary

	// Low and High are the whisker ends. They start at the margin-extended
	// extremes and may be clamped by the caller before drawing.
	Low, High float64

	Box bool
	// BoxOnly draws the IQR box and median without whiskers.
	BoxOnly bool
	Style   Style
}

// NewViolin estimates the shape and summary of sample.
func NewViolin(sample []float64, o Options) (*Violin, error) {
	if o.Bandwidth == 0 {
		o.Bandwidth = violin.DefaultBandwidth
	}
	if o.Width == 0 {
		o.Width = violin.DefaultWidth
	}
	if o.Margin == 0 {
		o.Margin = violin.DefaultMargin
	}
	if len(o.Grid) == 0 {
		return nil, violin.ErrEmptyGrid
	}

	shape, err := violin.Estimate(sample, o.Grid, o.Bandwidth, o.Width)
	if err != nil {
		return nil, err
	}
	sum, err := violin.Summarize(sample)
	if err != nil {
		return nil, err
	}
	lo, hi := sum.Whiskers(o.Margin)

	return &Violin{
		Center:    o.Center,
		Sample:    sample,
		Bandwidth: o.Bandwidth,
		Width:     o.Width,
		Shape:     shape,
		Summary:   sum,
		Low:       lo,
		High:      hi,
		Box:       !o.NoBox,
		BoxOnly:   o.BoxOnly,
		Style:     o.Style,
	}, nil
}

// Outline returns the closed silhouette: up the left edge, down the right.
func (v *Violin) Outline() plotter.XYs {
	n := len(v.Shape.Grid)
	xys := make(plotter.XYs, 0, 2*n)
	for i := 0; i < n; i++ {
		xys = append(xys, plotter.XY{X: v.Center - v.Shape.Density[i], Y: v.Shape.Grid[i]})
	}
	for i := n - 1; i >= 0; i-- {
		xys = append(xys, plotter.XY{X: v.Center + v.Shape.Density[i], Y: v.Shape.Grid[i]})
	}
	return xys
}

// Silhouette returns the filled shape and its two outline strokes.
func (v *Violin) Silhouette() ([]plot.Plotter, error) {
	sty := v.Style
	edge := sty.Edge
	if edge == nil {
		edge = sty.Fill
	}

	fill, err := plotter.NewPolygon(v.Outline())
	if err != nil {
		return nil, fmt.Errorf("violin fill: %w", err)
	}
	fill.Color = Fade(sty.Fill, sty.Alpha)
	fill.LineStyle.Width = 0

	n := len(v.Shape.Grid)
	left := make(plotter.XYs, n)
	right := make(plotter.XYs, n)
	for i := range v.Shape.Grid {
		left[i] = plotter.XY{X: v.Center - v.Shape.Density[i], Y: v.Shape.Grid[i]}
		right[i] = plotter.XY{X: v.Center + v.Shape.Density[i], Y: v.Shape.Grid[i]}
	}

	ps := []plot.Plotter{fill}
	for _, side := range []plotter.XYs{left, right} {
		l, err := plotter.NewLine(side)
		if err != nil {
			return nil, fmt.Errorf("violin outline: %w", err)
		}
		l.LineStyle.Color = edge
		l.LineStyle.Width = sty.EdgeWidth
		ps = append(ps, l)
	}
	return ps, nil
}

// Overlay returns the IQR box, median tick, whiskers and caps.
func (v *Violin) Overlay() ([]plot.Plotter, error) {
	sty := v.Style
	s := v.Summary
	c := v.Center
	bw := sty.BoxWidth / 2
	cw := sty.CapWidth / 2

	box, err := plotter.NewPolygon(plotter.XYs{
		{X: c - bw, Y: s.Q1}, {X: c + bw, Y: s.Q1},
		{X: c + bw, Y: s.Q3}, {X: c - bw, Y: s.Q3},
	})
	if err != nil {
		return nil, fmt.Errorf("iqr box: %w", err)
	}
	box.Color = White
	box.LineStyle.Color = Black
	box.LineStyle.Width = sty.BoxLine

	segments := []struct {
		x0, y0, x1, y1 float64
		width          vg.Length
	}{
		{c - bw, s.Median, c + bw, s.Median, sty.MedianLine},
		{c, v.Low, c, s.Q1, sty.WhiskerLine},
		{c, s.Q3, c, v.High, sty.WhiskerLine},
		{c - cw, v.Low, c + cw, v.Low, sty.CapLine},
		{c - cw, v.High, c + cw, v.High, sty.CapLine},
	}

	if v.BoxOnly {
		segments = segments[:1]
	}

	ps := []plot.Plotter{box}
	for _, sg := range segments {
		l, err := Segment(sg.x0, sg.y0, sg.x1, sg.y1, Black, sg.width)
		if err != nil {
			return nil, err
		}
		ps = append(ps, l)
	}
	return ps, nil
}

// AddViolin draws v into the panel and records it.
func (p *Panel) AddViolin(v *Violin) error {
	ps, err := v.Silhouette()
	if err != nil {
		return err
	}
	if v.Box {
		overlay, err := v.Overlay()
		if err != nil {
			return err
		}
		ps = append(ps, overlay...)
	}
	p.Add(ps...)
	p.Violins = append(p.Violins, v)
	return nil
}

// Segment returns a straight line from (x0, y0) to (x1, y1).
func Segment(x0, y0, x1, y1 float64, c color.Color, width vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	return l, nil
}

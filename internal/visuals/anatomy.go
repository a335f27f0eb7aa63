package visuals

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/violin-visuals/internal/figure"
	"github.com/HamletTheHamster/violin-visuals/internal/violin"
)

// anatomyQuartiles are the idealised order statistics the diagram labels.
var anatomyQuartiles = []float64{1.4, 2.2, 3.0, 3.8, 4.6}

type callout struct {
	label, sub   string
	x, y, tx, ty float64
	emphasis     bool
}

// Anatomy draws one idealised violin with its parts labelled.
func Anatomy(Options) (*figure.Figure, error) {
	f := figure.New("anatomy", "Anatomy", 12, 7, 1, 1)
	p := figure.Blank("Anatomy")

	// A single kernel at 3 with variance 0.2 gives the symmetric silhouette.
	shape, err := violin.Estimate([]float64{3}, violin.Grid(1.2, 4.8, violin.DefaultGridSize), math.Sqrt(0.2), 0.7)
	if err != nil {
		return nil, err
	}
	sum, err := violin.Summarize(anatomyQuartiles)
	if err != nil {
		return nil, err
	}
	lo, hi := sum.Whiskers(0)

	v := &figure.Violin{
		Center:    5,
		Sample:    anatomyQuartiles,
		Bandwidth: math.Sqrt(0.2),
		Width:     0.7,
		Shape:     shape,
		Summary:   sum,
		Low:       lo,
		High:      hi,
		Box:       true,
		Style: figure.Style{
			Fill:        figure.Indigo,
			Edge:        figure.DeepIndigo,
			Alpha:       0.55,
			EdgeWidth:   3,
			BoxWidth:    0.15,
			CapWidth:    0.1,
			BoxLine:     1.2,
			MedianLine:  2,
			WhiskerLine: 1,
			CapLine:     1.2,
		},
	}
	if err := p.AddViolin(v); err != nil {
		return nil, err
	}

	callouts := []callout{
		{label: "Maximum", sub: "(100th %ile)", x: 7.2, y: 4.8, tx: 5.7, ty: sum.Max},
		{label: "Q3", sub: "(75th %ile)", x: 7.2, y: 4.0, tx: 5.35, ty: sum.Q3},
		{label: "MEDIAN", sub: "(50th %ile)", x: 7.8, y: 3.0, tx: 5.5, ty: sum.Median, emphasis: true},
		{label: "Q1", sub: "(25th %ile)", x: 7.2, y: 2.0, tx: 5.35, ty: sum.Q1},
		{label: "Minimum", sub: "(0th %ile)", x: 7.2, y: 1.2, tx: 5.7, ty: sum.Min},
	}
	for _, c := range callouts {
		size, ink, arrow, width := vg.Length(13), color.Color(figure.Ink), color.Color(figure.DeepIndigo), vg.Length(2)
		subSize, subInk := vg.Length(10), color.Color(figure.Grey)
		subY := c.y + 0.2
		if c.ty < sum.Median {
			subY = c.y - 0.2
		}
		if c.emphasis {
			size, ink, arrow, width = 15, figure.Red, figure.Red, 2.5
			subSize, subInk = 11, figure.Red
			subY = c.y - 0.3
		}

		p.Add(
			figure.Callout(c.label, c.x, c.y, c.tx, c.ty, figure.TextStyle(size, true, ink), arrow, width),
			figure.Label(c.sub, c.x, subY, figure.TextStyle(subSize, false, subInk)),
		)
	}

	p.Add(figure.Callout("Kernel Density", 1.2, 3.0, 4.3, 3.0,
		figure.TextStyle(14, true, figure.Purple), figure.Purple, 2.5))

	p.Frame(0, 10, 0, 6)
	f.Add(p)
	return f, nil
}

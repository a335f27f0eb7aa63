package visuals

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/violin-visuals/internal/figure"
	"github.com/HamletTheHamster/violin-visuals/internal/sample"
	"github.com/HamletTheHamster/violin-visuals/internal/violin"
)

const (
	streamPitfalls = 200
	pitfallTitle   = 11
)

// pitfallBuilders are laid out row-major on a 2x4 grid.
var pitfallBuilders = []func(Options, *sample.Generator) (*figure.Panel, error){
	smallSample,
	wrongBandwidth,
	discreteData,
	differentScales,
	beyondDataRange,
	tooManyGroups,
	hiddenData,
	ignoringOutliers,
}

// Pitfalls draws eight common violin plot mistakes in a 2x4 grid.
func Pitfalls(o Options) (*figure.Figure, error) {
	f := figure.New("pitfalls", "Pitfalls", 20, 10, 2, 4)
	for i, build := range pitfallBuilders {
		p, err := build(o, o.generator(streamPitfalls+uint64(i)))
		if err != nil {
			return nil, fmt.Errorf("pitfall %d: %w", i, err)
		}
		f.Add(p)
	}
	return f, nil
}

// markerRadius converts a scatter marker area in pt^2 to a glyph radius.
func markerRadius(area float64) vg.Length {
	return vg.Length(math.Sqrt(area) / 2)
}

func single(
	o Options,
	data []float64,
	c color.Color,
	lo, hi float64,
) (
	*figure.Violin, error,
) {

	return figure.NewViolin(data, figure.Options{
		Grid:      violin.Grid(lo, hi, violin.DefaultGridSize),
		Bandwidth: o.bandwidth(),
		Style:     figure.Single(c),
	})
}

func withViolin(p *figure.Panel, v *figure.Violin, err error) (*figure.Panel, error) {
	if err != nil {
		return nil, err
	}
	if err := p.AddViolin(v); err != nil {
		return nil, err
	}
	return p, nil
}

func smallSample(o Options, g *sample.Generator) (*figure.Panel, error) {
	p := figure.NewPanel("Small Sample", "Small Sample (n<20)\nUnreliable", figure.Indigo, pitfallTitle)
	p.Frame(-0.5, 0.5, -4, 4)
	v, err := single(o, g.Normal(0, 1, 15), figure.Indigo, -4, 4)
	return withViolin(p, v, err)
}

func wrongBandwidth(o Options, g *sample.Generator) (*figure.Panel, error) {
	p := figure.NewPanel("Wrong Bandwidth", "Wrong Bandwidth\nToo smooth - hides features", figure.Grey, pitfallTitle)

	data := sample.Concat(g.Normal(-1, 0.5, 50), g.Normal(1, 0.5, 50))
	v, err := figure.NewViolin(data, figure.Options{
		Grid:      violin.Grid(-4, 4, violin.DefaultGridSize),
		Bandwidth: 2 * o.bandwidth(),
		Margin:    0.8,
		Style:     figure.Single(figure.Blue),
	})
	if err != nil {
		return nil, err
	}
	p.Frame(-0.5, 0.5, v.Low-0.3, v.High+0.3)
	return withViolin(p, v, nil)
}

func discreteData(o Options, g *sample.Generator) (*figure.Panel, error) {
	p := figure.NewPanel("Discrete Data", "Discrete Data\nMisleading", figure.Grey, pitfallTitle)
	p.Frame(-0.5, 0.5, 0, 6)

	ratings := []float64{1, 2, 3, 4, 5}
	data := g.Choice(ratings, []float64{0.1, 0.2, 0.3, 0.25, 0.15}, 100)
	v, err := figure.NewViolin(data, figure.Options{
		Grid:      violin.Grid(0, 6, violin.DefaultGridSize),
		Bandwidth: o.bandwidth(),
		NoBox:     true,
		Style:     figure.Single(figure.Purple),
	})
	if _, err := withViolin(p, v, err); err != nil {
		return nil, err
	}

	var xys plotter.XYs
	var radii []vg.Length
	for _, r := range ratings {
		var count int
		for _, x := range data {
			if x == r {
				count++
			}
		}
		if count == 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: 0, Y: r})
		radii = append(radii, markerRadius(float64(count)*3))
	}

	dots, err := figure.Dots(xys, figure.Fade(figure.Indigo, 0.7), 0)
	if err != nil {
		return nil, err
	}
	dots.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		sty := dots.GlyphStyle
		sty.Radius = radii[i]
		return sty
	}
	p.Add(dots)
	return p, nil
}

func differentScales(o Options, g *sample.Generator) (*figure.Panel, error) {
	p := figure.NewPanel("Different Scales", "Different Scales\nInvalid comparison", figure.Grey, pitfallTitle)
	p.Frame(-0.5, 0.5, -4, 9)

	groups := []struct {
		center, mu, lo, hi float64
		color              color.Color
	}{
		{center: -0.2, mu: 0, lo: -4, hi: 4, color: figure.Blue},
		{center: 0.2, mu: 5, lo: 1, hi: 9, color: figure.Amethyst},
	}
	for _, gr := range groups {
		v, err := figure.NewViolin(g.Normal(gr.mu, 1, 100), figure.Options{
			Center:    gr.center,
			Grid:      violin.Grid(gr.lo, gr.hi, violin.DefaultGridSize),
			Bandwidth: o.bandwidth(),
			Width:     0.15,
			Style:     figure.Grouped(gr.color),
		})
		if _, err := withViolin(p, v, err); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func beyondDataRange(o Options, g *sample.Generator) (*figure.Panel, error) {
	p := figure.NewPanel("Beyond Data Range", "Beyond Data Range\nKDE extends", figure.Grey, pitfallTitle)
	p.Frame(-0.5, 0.5, -4, 4)

	v, err := single(o, g.Normal(0, 1, 100), figure.Amethyst, -4, 4)
	if _, err := withViolin(p, v, err); err != nil {
		return nil, err
	}

	marks := []struct {
		label string
		y, dy float64
	}{
		{label: "Actual min", y: v.Summary.Min, dy: -0.3},
		{label: "Actual max", y: v.Summary.Max, dy: 0.3},
	}
	for _, m := range marks {
		l, err := figure.HLine(m.y, -0.5, 0.5, figure.Fade(figure.Indigo, 0.7), 2, true)
		if err != nil {
			return nil, err
		}
		p.Add(l, figure.Label(m.label, 0.4, m.y+m.dy, figure.TextStyle(9, true, figure.Indigo)))
	}
	return p, nil
}

func tooManyGroups(o Options, g *sample.Generator) (*figure.Panel, error) {
	p := figure.NewPanel("Too Many Groups", "Too Many Groups\nHard to compare", figure.Grey, pitfallTitle)
	p.Frame(-0.5, 5.5, -2, 4)

	grid := violin.Grid(-2, 4, violin.DefaultGridSize)
	for i := 0; i < 6; i++ {
		v, err := figure.NewViolin(g.Normal(0.4*float64(i), 0.4, 30), figure.Options{
			Center:    float64(i),
			Grid:      grid,
			Bandwidth: o.bandwidth(),
			Width:     0.15,
			Style:     figure.Grouped(figure.Palette(i, false)),
		})
		if _, err := withViolin(p, v, err); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func hiddenData(o Options, g *sample.Generator) (*figure.Panel, error) {
	p := figure.NewPanel("Hidden Data", "Smoothed KDE hides real data\nOverlay points for n<30", figure.Indigo, pitfallTitle)
	p.Frame(-0.5, 0.5, -4, 4)

	data := g.Normal(0, 1, 12)
	v, err := single(o, data, figure.Blue, -4, 4)
	if _, err := withViolin(p, v, err); err != nil {
		return nil, err
	}

	jitter := g.Jitter(0, 0.02, len(data))
	xys := make(plotter.XYs, len(data))
	for i := range data {
		xys[i] = plotter.XY{X: jitter[i], Y: data[i]}
	}
	dots, err := figure.Dots(xys, figure.Fade(figure.Indigo, 0.9), markerRadius(50))
	if err != nil {
		return nil, err
	}
	dots.Shape = figure.Ringed{Rim: 1}
	p.Add(dots)
	return p, nil
}

func ignoringOutliers(o Options, g *sample.Generator) (*figure.Panel, error) {
	p := figure.NewPanel("Ignoring Outliers", "Ignoring Outliers\nDistorts shape", figure.Grey, pitfallTitle)
	p.Frame(-0.5, 0.5, -6, 6)

	data := sample.Concat(g.Normal(0, 1, 90), []float64{-5, -4.5, 4.5, 5})
	v, err := single(o, data, figure.Purple, -6, 6)
	if _, err := withViolin(p, v, err); err != nil {
		return nil, err
	}

	var outliers plotter.XYs
	for _, x := range data {
		if math.Abs(x) > 3 {
			outliers = append(outliers, plotter.XY{X: 0, Y: x})
		}
	}
	crosses, err := figure.Crosses(outliers, figure.Indigo, markerRadius(50), 2)
	if err != nil {
		return nil, err
	}
	p.Add(crosses)
	return p, nil
}

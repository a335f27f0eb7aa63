package visuals

import (
	"gonum.org/v1/plot/plotter"

	"github.com/HamletTheHamster/violin-visuals/internal/figure"
	"github.com/HamletTheHamster/violin-visuals/internal/violin"
)

const (
	streamConstruction = 300
	constructionSize   = 50
)

// AnimationName is the file written by ConstructionFrames callers.
const AnimationName = "construction_steps.gif"

// Construction draws the four steps from raw points to a finished violin.
func Construction(o Options) (*figure.Figure, error) {
	steps, err := constructionSteps(o)
	if err != nil {
		return nil, err
	}
	f := figure.New("construction", "Construction", 16, 5, 1, 4)
	f.Add(steps...)
	return f, nil
}

// ConstructionFrames returns each construction step as its own figure, one
// animation frame per step.
func ConstructionFrames(o Options) ([]*figure.Figure, error) {
	steps, err := constructionSteps(o)
	if err != nil {
		return nil, err
	}
	frames := make([]*figure.Figure, len(steps))
	for i, p := range steps {
		f := figure.New("construction", "Construction", 4, 5, 1, 1)
		f.Add(p)
		frames[i] = f
	}
	return frames, nil
}

func constructionSteps(o Options) ([]*figure.Panel, error) {
	g := o.generator(streamConstruction)
	data := g.Normal(0, 1, constructionSize)
	jitter := g.Uniform(-0.3, 0.3, len(data))
	grid := violin.Grid(-3, 3, violin.DefaultGridSize)

	step := func(name string) *figure.Panel {
		p := figure.NewPanel(name, "", figure.Ink, 12)
		p.Frame(-0.5, 0.5, -3, 3)
		return p
	}

	raw := step("Raw data")
	xys := make(plotter.XYs, len(data))
	for i := range data {
		xys[i] = plotter.XY{X: jitter[i], Y: data[i]}
	}
	dots, err := figure.Dots(xys, figure.Fade(figure.Indigo, 0.7), markerRadius(40))
	if err != nil {
		return nil, err
	}
	dots.Shape = figure.Ringed{Rim: 0.5}
	raw.Add(dots)

	kde := step("Kernel density")
	quartiles := step("Quartiles")
	final := step("Violin")

	layers := []struct {
		panel *figure.Panel
		opts  figure.Options
	}{
		{kde, figure.Options{NoBox: true, Style: figure.Single(figure.Purple)}},
		{quartiles, figure.Options{BoxOnly: true, Style: figure.Single(figure.Purple)}},
		{final, figure.Options{Style: figure.Single(figure.Indigo)}},
	}
	layers[1].opts.Style.Alpha = 0.5

	for _, l := range layers {
		l.opts.Grid = grid
		l.opts.Bandwidth = o.bandwidth()
		v, err := figure.NewViolin(data, l.opts)
		if _, err := withViolin(l.panel, v, err); err != nil {
			return nil, err
		}
	}

	return []*figure.Panel{raw, kde, quartiles, final}, nil
}

package visuals

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/HamletTheHamster/violin-visuals/internal/figure"
	"github.com/HamletTheHamster/violin-visuals/internal/sample"
	"github.com/HamletTheHamster/violin-visuals/internal/violin"
)

const (
	patternSize    = 200
	streamPatterns = 100
)

type pattern struct {
	name, title string
	color       color.Color
	draw        func(g *sample.Generator) []float64
	// span is the half-range of the default grid and y limits.
	span   float64
	grid   func(data []float64) []float64
	adjust func(v *figure.Violin)
	limits func(v *figure.Violin) (lo, hi float64)
}

func patterns() []pattern {
	return []pattern{
		{
			name: "Unimodal", title: "UNIMODAL\nSingle peak", color: figure.Indigo, span: 4,
			draw: func(g *sample.Generator) []float64 { return g.Normal(0, 1, patternSize) },
		},
		{
			name: "Bimodal", title: "BIMODAL\nTwo peaks", color: figure.Purple, span: 4,
			draw: func(g *sample.Generator) []float64 {
				return sample.Concat(g.Normal(-1.5, 0.6, 100), g.Normal(1.5, 0.6, 100))
			},
		},
		{
			name: "Skewed", title: "SKEWED\nAsymmetric", color: figure.Amethyst,
			draw: func(g *sample.Generator) []float64 { return g.LogNormal(0.5, 0.8, patternSize) },
			grid: func(data []float64) []float64 {
				return violin.Grid(math.Max(0, floats.Min(data)-0.5), floats.Max(data)+0.5, violin.DefaultGridSize)
			},
			// Log-normal data is positive, so the whisker stops at zero.
			adjust: func(v *figure.Violin) { v.Low = math.Max(0, v.Low) },
			limits: func(v *figure.Violin) (float64, float64) {
				return math.Max(0, v.Low-0.2), v.High + 0.2
			},
		},
		{
			name: "Heavy tails", title: "HEAVY TAILS\nWide spread", color: figure.Blue, span: 6,
			draw: func(g *sample.Generator) []float64 { return g.StudentsT(3, patternSize) },
		},
		{
			name: "Multimodal", title: "MULTIMODAL\nSeveral subgroups", color: figure.DeepIndigo, span: 4,
			draw: func(g *sample.Generator) []float64 {
				return sample.Concat(g.Normal(-2, 0.5, 70), g.Normal(0, 0.5, 70), g.Normal(2, 0.5, 60))
			},
		},
		{
			name: "Uniform", title: "UNIFORM/FLAT\nNo central tendency", color: figure.Sky, span: 3.5,
			draw: func(g *sample.Generator) []float64 { return g.Uniform(-3, 3, patternSize) },
		},
	}
}

// Patterns draws six distribution shapes in a 3x2 grid.
func Patterns(o Options) (*figure.Figure, error) {
	f := figure.New("patterns", "Patterns", 10, 12, 3, 2)

	for i, pat := range patterns() {
		data := pat.draw(o.generator(streamPatterns + uint64(i)))

		grid := violin.Grid(-pat.span, pat.span, violin.DefaultGridSize)
		if pat.grid != nil {
			grid = pat.grid(data)
		}

		v, err := figure.NewViolin(data, figure.Options{
			Grid:      grid,
			Bandwidth: o.bandwidth(),
			Style:     figure.Single(pat.color),
		})
		if err != nil {
			return nil, err
		}
		if pat.adjust != nil {
			pat.adjust(v)
		}

		p := figure.NewPanel(pat.name, pat.title, figure.Ink, 13)
		if err := p.AddViolin(v); err != nil {
			return nil, err
		}

		lo, hi := -pat.span, pat.span
		if pat.limits != nil {
			lo, hi = pat.limits(v)
		}
		p.Frame(-0.5, 0.5, lo, hi)
		f.Add(p)
	}
	return f, nil
}

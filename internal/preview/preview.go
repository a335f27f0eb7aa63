// Package preview draws the density curves of a figure through gnuplot for
// a quick look without rendering the full image.
//
// The package talks to gnuplot through the Plotter interface, which
// *glot.Plot satisfies. glot aborts at start-up when gnuplot is missing, so
// only the violins-preview command links it.
package preview

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/HamletTheHamster/violin-visuals/internal/figure"
)

// ErrNoCurves is returned for a figure without violins.
var ErrNoCurves = errors.New("preview: no density curves")

// Plotter is the subset of *glot.Plot used to draw curves.
type Plotter interface {
	AddPointGroup(name string, style string, data interface{}) error
	SetTitle(title string) error
	SetXLabel(label string) error
	SetYLabel(label string) error
	SetXrange(start int, end int) error
	SetYrange(start int, end int) error
	SavePlot(filename string) error
	Close() error
}

// Curve is one density curve, value on X and density on Y.
type Curve struct {
	Name string
	X, Y []float64
}

// Curves extracts one curve per violin of f. Violins sharing a panel get
// their position appended to the name.
func Curves(f *figure.Figure) []Curve {
	var cs []Curve
	for _, p := range f.Panels {
		for _, v := range p.Violins {
			name := p.Name
			if len(p.Violins) > 1 {
				name = fmt.Sprintf("%s @%g", p.Name, v.Center)
			}
			cs = append(cs, Curve{Name: name, X: v.Shape.Grid, Y: v.Shape.Density})
		}
	}
	return cs
}

func bounds(cs []Curve) (xmin, xmax, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, c := range cs {
		for i, x := range c.X {
			xmin = math.Min(xmin, x)
			xmax = math.Max(xmax, x)
			ymax = math.Max(ymax, c.Y[i])
		}
	}
	return xmin, xmax, ymax
}

// Plot sends the curves of f to plt and closes it, which waits for gnuplot
// to finish and removes its data files. With path set the plot is also
// saved there as an image.
func Plot(f *figure.Figure, plt Plotter, path string) (err error) {
	defer func() {
		if cerr := plt.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("preview: close gnuplot: %w", cerr)
		}
	}()

	cs := Curves(f)
	if len(cs) == 0 {
		return fmt.Errorf("%w in %s", ErrNoCurves, f.Name)
	}
	for _, c := range cs {
		if err := plt.AddPointGroup(c.Name, "lines", [][]float64{c.X, c.Y}); err != nil {
			return fmt.Errorf("preview: %s: %w", c.Name, err)
		}
	}

	xmin, xmax, ymax := bounds(cs)
	settings := []struct {
		what string
		set  func() error
	}{
		{"title", func() error { return plt.SetTitle(f.Title + " density curves") }},
		{"x label", func() error { return plt.SetXLabel("value") }},
		{"y label", func() error { return plt.SetYLabel("half-width") }},
		{"x range", func() error { return plt.SetXrange(int(math.Floor(xmin)), int(math.Ceil(xmax))) }},
		{"y range", func() error { return plt.SetYrange(0, int(math.Ceil(ymax))) }},
	}
	for _, s := range settings {
		if err := s.set(); err != nil {
			return fmt.Errorf("preview: set %s: %w", s.what, err)
		}
	}

	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := plt.SavePlot(path); err != nil {
		return fmt.Errorf("preview: save %s: %w", path, err)
	}
	return nil
}

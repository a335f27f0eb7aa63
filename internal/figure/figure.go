// Package figure lays out violin panels on a gonum/plot canvas and writes
// them out as PNG images or animated GIFs.
package figure

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution of published images.
const DPI = 300

// ErrLayout is returned when a figure's panels do not fill its grid.
var ErrLayout = errors.New("figure: panel count does not match grid")

// Figure is a grid of panels rendered onto one image.
type Figure struct {
	// Name is the file stem, e.g. "patterns".
	Name string
	// Title is the human readable name, e.g. "Patterns".
	Title string

	Width, Height vg.Length
	Rows, Cols    int

	// Panels are stored row-major.
	Panels []*Panel

	Tiles draw.Tiles
}

// New returns an empty figure of w x h inches.
func New(name, title string, w, h float64, rows, cols int) *Figure {
	return &Figure{
		Name:   name,
		Title:  title,
		Width:  vg.Length(w) * vg.Inch,
		Height: vg.Length(h) * vg.Inch,
		Rows:   rows,
		Cols:   cols,
		Tiles: draw.Tiles{
			Rows:      rows,
			Cols:      cols,
			PadTop:    vg.Points(12),
			PadBottom: vg.Points(12),
			PadLeft:   vg.Points(18),
			PadRight:  vg.Points(18),
			PadX:      vg.Points(24),
			PadY:      vg.Points(24),
		},
	}
}

// Add appends panels in row-major order.
func (f *Figure) Add(ps ...*Panel) {
	f.Panels = append(f.Panels, ps...)
}

// FileName is the image file written for the figure.
func (f *Figure) FileName() string {
	return f.Name + "_visualization.png"
}

// Violins returns every violin of the figure, panel by panel.
func (f *Figure) Violins() []*Violin {
	var vs []*Violin
	for _, p := range f.Panels {
		vs = append(vs, p.Violins...)
	}
	return vs
}

// Render draws the figure onto a white canvas at dpi.
func (f *Figure) Render(dpi int) (*vgimg.Canvas, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("figure: dpi %d must be positive", dpi)
	}
	if f.Rows*f.Cols != len(f.Panels) || len(f.Panels) == 0 {
		return nil, fmt.Errorf("%w: %d panels for %dx%d", ErrLayout, len(f.Panels), f.Rows, f.Cols)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(White),
	)
	dc := draw.New(c)

	if f.Rows == 1 && f.Cols == 1 {
		p := f.Panels[0]
		p.frame()
		p.Draw(dc)
		return c, nil
	}

	grid := make([][]*plot.Plot, f.Rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, f.Cols)
		for col := range grid[r] {
			p := f.Panels[r*f.Cols+col]
			p.frame()
			grid[r][col] = p.Plot
		}
	}

	canvases := plot.Align(grid, f.Tiles, dc)
	for r := range grid {
		for col := range grid[r] {
			grid[r][col].Draw(canvases[r][col])
		}
	}
	return c, nil
}

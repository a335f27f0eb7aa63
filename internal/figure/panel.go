package figure

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Panel is one axes-free cell of a figure. It keeps the violins it draws so
// callers can report on them after the figure is built.
type Panel struct {
	*plot.Plot

	// Name identifies the panel in reports, e.g. "Unimodal".
	Name    string
	Violins []*Violin

	limits *[4]float64
}

// NewPanel returns a panel with hidden axes on the light backdrop and a bold
// title in the given colour and size.
func NewPanel(
	name, title string,
	titleColor color.Color,
	titleSize vg.Length,
) *Panel {

	p := plot.New()
	p.BackgroundColor = Backdrop
	p.HideAxes()
	p.X.Padding = 0
	p.Y.Padding = 0

	p.Title.Text = title
	p.Title.Padding = vg.Points(8)
	p.Title.TextStyle.Color = titleColor
	p.Title.TextStyle.Font = Font(titleSize, true)

	return &Panel{Plot: p, Name: name}
}

// Blank returns a panel with no title and no backdrop.
func Blank(name string) *Panel {
	p := NewPanel(name, "", Ink, 12)
	p.BackgroundColor = nil
	return p
}

// Frame fixes the data range shown by the panel. The range is applied when
// the figure is rendered, after every plotter has been added.
func (p *Panel) Frame(xmin, xmax, ymin, ymax float64) {
	p.limits = &[4]float64{xmin, xmax, ymin, ymax}
}

func (p *Panel) frame() {
	if p.limits == nil {
		return
	}
	p.X.Min, p.X.Max = p.limits[0], p.limits[1]
	p.Y.Min, p.Y.Max = p.limits[2], p.limits[3]
}

// Font returns Liberation Sans at size, bold or regular.
func Font(size vg.Length, bold bool) font.Font {
	f := font.Font{Typeface: "Liberation", Variant: "Sans"}
	if bold {
		f.Weight = xfont.WeightBold
	}
	return font.From(f, size)
}

// TextStyle returns a left aligned, baseline anchored text style.
func TextStyle(size vg.Length, bold bool, c color.Color) text.Style {
	return text.Style{
		Color:   c,
		Font:    Font(size, bold),
		XAlign:  text.XLeft,
		YAlign:  text.YBottom,
		Handler: plot.DefaultTextHandler,
	}
}

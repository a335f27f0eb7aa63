// Package report collects per-violin statistics of a figure and exports
// them as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/HamletTheHamster/violin-visuals/internal/figure"
	"github.com/HamletTheHamster/violin-visuals/internal/fit"
	"github.com/HamletTheHamster/violin-visuals/internal/violin"
)

// Header is the first CSV record.
var Header = []string{
	"routine", "panel", "center", "n", "bandwidth",
	"min", "q1", "median", "q3", "max",
	"whisker_low", "whisker_high",
	"peak_center", "peak_sigma",
}

// Row describes one violin.
type Row struct {
	Routine   string
	Panel     string
	Center    float64
	N         int
	Bandwidth float64
	Summary   violin.Summary
	Low, High float64

	// Peak is nil when the Gaussian fit did not converge.
	Peak *fit.Peak
}

// Collect returns one row per violin of f, fitting the dominant peak of
// each density curve.
func Collect(routine string, f *figure.Figure) []Row {
	var rows []Row
	for _, p := range f.Panels {
		for _, v := range p.Violins {
			row := Row{
				Routine:   routine,
				Panel:     p.Name,
				Center:    v.Center,
				N:         len(v.Sample),
				Bandwidth: v.Bandwidth,
				Summary:   v.Summary,
				Low:       v.Low,
				High:      v.High,
			}
			if peak, err := fit.Fit(v.Shape.Grid, v.Shape.Density); err == nil {
				row.Peak = &peak
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Record formats r in Header order.
func (r Row) Record() []string {
	s := r.Summary
	rec := []string{
		r.Routine, r.Panel, num(r.Center), strconv.Itoa(r.N), num(r.Bandwidth),
		num(s.Min), num(s.Q1), num(s.Median), num(s.Q3), num(s.Max),
		num(r.Low), num(r.High),
		"", "",
	}
	if r.Peak != nil {
		rec[12], rec[13] = num(r.Peak.Center), num(r.Peak.Sigma)
	}
	return rec
}

// WriteCSV writes a header and one record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("write %s/%s: %w", r.Routine, r.Panel, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

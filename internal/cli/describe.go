package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/violin-visuals/internal/report"
	"github.com/HamletTheHamster/violin-visuals/internal/visuals"
)

func newDescribeCmd(s *settings) *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "describe [routine...]",
		Short: "Print the statistics behind every violin",
		Long:  `describe rebuilds the figures without rendering them and prints, for every violin, its sample size, bandwidth, five-number summary, whisker ends and the centre and width of a Gaussian fitted to its density curve.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return describe(cmd, s, args, csvPath)
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "also write the rows as CSV to this file (- for stdout)")
	return cmd
}

func describe(cmd *cobra.Command, s *settings, names []string, csvPath string) error {
	if len(names) == 0 {
		names = visuals.Names()
	}

	var rows []report.Row
	for _, name := range names {
		r, err := visuals.Lookup(name)
		if err != nil {
			return err
		}
		f, err := r.Build(s.cfg.Options())
		if err != nil {
			return fmt.Errorf("build %s: %w", r.Name, err)
		}
		rs := report.Collect(r.Name, f)
		loggerFromContext(cmd.Context()).Debug("collected", "routine", r.Name, "violins", len(rs))
		printRows(cmd.OutOrStdout(), r.Title, rs)
		rows = append(rows, rs...)
	}

	if csvPath == "" {
		return nil
	}
	if csvPath == "-" {
		return report.WriteCSV(cmd.OutOrStdout(), rows)
	}

	file, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	if err := report.WriteCSV(file, rows); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	printPath(cmd.OutOrStdout(), csvPath)
	return nil
}

// statsHeader names the columns printed for every violin.
var statsHeader = []string{"violin", "n", "bw", "min", "q1", "median", "q3", "max", "whiskers", "peak"}

func printRows(w io.Writer, title string, rows []report.Row) {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		label := r.Panel
		if r.Center != 0 {
			label = fmt.Sprintf("%s @%g", r.Panel, r.Center)
		}
		s := r.Summary
		peak := "-"
		if r.Peak != nil {
			peak = fmt.Sprintf("%.2f±%.2f", r.Peak.Center, r.Peak.Sigma)
		}
		cells[i] = []string{
			label,
			fmt.Sprint(r.N),
			fmt.Sprintf("%.2f", r.Bandwidth),
			fmt.Sprintf("%.2f", s.Min),
			fmt.Sprintf("%.2f", s.Q1),
			fmt.Sprintf("%.2f", s.Median),
			fmt.Sprintf("%.2f", s.Q3),
			fmt.Sprintf("%.2f", s.Max),
			fmt.Sprintf("[%.2f, %.2f]", r.Low, r.High),
			peak,
		}
	}
	printTable(w, title, statsHeader, cells)
}

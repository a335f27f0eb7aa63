// Command violins-preview plots the density curves of one routine with
// gnuplot. It is kept apart from violins because glot requires gnuplot to
// be installed before the program starts.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Arafatk/glot"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/violin-visuals/internal/config"
	"github.com/HamletTheHamster/violin-visuals/internal/preview"
	"github.com/HamletTheHamster/violin-visuals/internal/visuals"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		configPath string
		output     string
		window     bool
	)
	cmd := &cobra.Command{
		Use:           "violins-preview <routine>",
		Short:         "Plot a routine's density curves with gnuplot",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, optional := configPath, false
			if path == "" {
				path, optional = config.FileName, true
			}
			cfg, err := config.Load(path, optional)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.Output = output
			}

			r, err := visuals.Lookup(args[0])
			if err != nil {
				return err
			}
			f, err := r.Build(cfg.Options())
			if err != nil {
				return err
			}

			target := filepath.Join(cfg.Output, "preview", r.Name+".png")
			if window {
				target = ""
			}
			plt, err := glot.NewPlot(2, window, false)
			if err != nil {
				return fmt.Errorf("start gnuplot: %w", err)
			}
			if err := preview.Plot(f, plt, target); err != nil {
				return err
			}

			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{ReportTimestamp: true, TimeFormat: "15:04:05"})
			logger.Info("preview done", "routine", r.Name, "curves", len(preview.Curves(f)), "file", target)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ./"+config.FileName+" when present)")
	cmd.Flags().StringVarP(&output, "out", "o", config.Default().Output, "output directory")
	cmd.Flags().BoolVar(&window, "window", false, "keep an interactive gnuplot window instead of saving a PNG")
	return cmd
}

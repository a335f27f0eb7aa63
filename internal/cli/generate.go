package cli

import (
	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/violin-visuals/internal/figure"
	"github.com/HamletTheHamster/violin-visuals/internal/visuals"
)

// newRoutineCmds returns one command per routine. Each renders its image
// in-process; these are also what the runner launches as children.
func newRoutineCmds(s *settings) []*cobra.Command {
	var cmds []*cobra.Command
	for _, r := range visuals.Routines() {
		cmd := &cobra.Command{
			Use:   r.Name,
			Short: "Generate the " + r.Name + " image",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return generate(cmd, s, r)
			},
		}
		if r.Name == "construction" {
			var animate bool
			cmd.Flags().BoolVar(&animate, "gif", false, "also write "+visuals.AnimationName)
			cmd.RunE = func(cmd *cobra.Command, args []string) error {
				if err := generate(cmd, s, r); err != nil {
					return err
				}
				if !animate {
					return nil
				}
				return animateConstruction(cmd, s)
			}
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func generate(cmd *cobra.Command, s *settings, r visuals.Routine) error {
	t := startTimer(loggerFromContext(cmd.Context()), "rendered")

	path, err := visuals.Generate(r, s.cfg.Options(), s.cfg.Output, s.cfg.DPI)
	if err != nil {
		return err
	}
	t.stop("routine", r.Name, "dpi", s.cfg.DPI)

	printSuccess(cmd.OutOrStdout(), "%s visualization saved as '%s'", r.Title, path)
	return nil
}

func animateConstruction(cmd *cobra.Command, s *settings) error {
	t := startTimer(loggerFromContext(cmd.Context()), "animated")

	frames, err := visuals.ConstructionFrames(s.cfg.Options())
	if err != nil {
		return err
	}
	delay := s.cfg.GIF.Delay
	if delay == 0 {
		delay = figure.DefaultDelay
	}
	path, err := figure.SaveGIF(frames, s.cfg.Output, visuals.AnimationName, s.cfg.DPI, delay)
	if err != nil {
		return err
	}
	t.stop("routine", "construction", "frames", len(frames), "delay", delay)

	printSuccess(cmd.OutOrStdout(), "Construction animation saved as '%s'", path)
	return nil
}

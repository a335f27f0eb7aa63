package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/violin-visuals/internal/config"
	"github.com/HamletTheHamster/violin-visuals/internal/runner"
	"github.com/HamletTheHamster/violin-visuals/internal/visuals"
)

// executable locates the binary the runner re-executes; childPrefix is
// passed ahead of the routine name.
var (
	executable  = os.Executable
	childPrefix []string
)

func newAllCmd(s *settings) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Generate every image, each routine in its own process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd, s, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any routine fails")
	return cmd
}

// routineTasks builds one child invocation per routine. prefix is inserted
// before the routine name.
func routineTasks(exe string, prefix []string, cfg config.Config) []runner.Task {
	var tasks []runner.Task
	for _, name := range visuals.Names() {
		args := append([]string{}, prefix...)
		args = append(args,
			name,
			"--out", cfg.Output,
			"--dpi", strconv.Itoa(cfg.DPI),
			"--seed", strconv.FormatUint(cfg.Seed, 10),
			"--bandwidth", strconv.FormatFloat(cfg.Bandwidth, 'g', -1, 64),
		)
		tasks = append(tasks, runner.Task{
			Name: name,
			Command: func(ctx context.Context) *exec.Cmd {
				return exec.CommandContext(ctx, exe, args...)
			},
		})
	}
	return tasks
}

func runAll(cmd *cobra.Command, s *settings, strict bool) error {
	exe, err := executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	var files []string
	for _, r := range visuals.Routines() {
		files = append(files, r.Name+"_visualization.png")
	}

	r := &runner.Runner{
		Out:    cmd.OutOrStdout(),
		Logger: loggerFromContext(cmd.Context()),
		Dir:    s.cfg.Output,
		Files:  files,
	}
	t := startTimer(r.Logger, "ran routines")
	res := r.Run(cmd.Context(), routineTasks(exe, childPrefix, s.cfg))
	t.stop("total", len(res.Outcomes), "failed", len(res.Failed()))
	for _, o := range res.Failed() {
		printFailure(cmd.ErrOrStderr(), "%s: %v", o.Name, o.Err)
	}

	if err := cmd.Context().Err(); err != nil {
		return err
	}
	if strict {
		return res.Err()
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/violin-visuals/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. It is
// called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// settings holds the persistent flags and the config they resolve to.
type settings struct {
	configPath string
	verbose    bool

	output    string
	dpi       int
	seed      uint64
	bandwidth float64

	cfg config.Config
}

// resolve loads the config file and lays explicitly set flags over it.
func (s *settings) resolve(cmd *cobra.Command) error {
	path, optional := s.configPath, false
	if path == "" {
		path, optional = config.FileName, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output = s.output
	}
	if flags.Changed("dpi") {
		cfg.DPI = s.dpi
	}
	if flags.Changed("seed") {
		cfg.Seed = s.seed
	}
	if flags.Changed("bandwidth") {
		cfg.Bandwidth = s.bandwidth
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// NewRootCommand builds the violins command tree. Without a subcommand it
// generates every image.
func NewRootCommand() *cobra.Command {
	s := &settings{}
	def := config.Default()

	root := &cobra.Command{
		Use:           "violins",
		Short:         "Generate violin plot explainer images",
		Long:          `violins renders four PNG images explaining violin plots: an anatomy diagram, distribution patterns, common pitfalls and construction steps.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), s.verbose)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			if err := s.resolve(cmd); err != nil {
				return err
			}
			logger.Debug("settings", "output", s.cfg.Output, "dpi", s.cfg.DPI, "seed", s.cfg.Seed, "bandwidth", s.cfg.Bandwidth)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("violins %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&s.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&s.configPath, "config", "", "config file (default ./"+config.FileName+" when present)")
	pf.StringVarP(&s.output, "out", "o", def.Output, "output directory")
	pf.IntVar(&s.dpi, "dpi", def.DPI, "image resolution")
	pf.Uint64Var(&s.seed, "seed", def.Seed, "base random seed")
	pf.Float64Var(&s.bandwidth, "bandwidth", def.Bandwidth, "kernel bandwidth")

	var strict bool
	root.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any routine fails")
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runAll(cmd, s, strict)
	}

	root.AddCommand(newAllCmd(s))
	for _, cmd := range newRoutineCmds(s) {
		root.AddCommand(cmd)
	}
	root.AddCommand(newDescribeCmd(s))

	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

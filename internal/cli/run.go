package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/fcsc/config"
	"github.com/katalvlaran/fcsc/pipeline"
	"github.com/katalvlaran/fcsc/report"
	"github.com/katalvlaran/fcsc/source"
	"github.com/spf13/cobra"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	ConfigPath  string
	Input       string
	Synthetic   bool
	Subjects    int
	Nodes       int
	Seed        int64
	Noise       float64
	Coupling    float64
	NoLog       bool
	NoFisherZ   bool
	NoConstrain bool
	NoSign      bool
	Sequential  bool
	SymmetryEps float64
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fit FC and SC models and report the decomposition",
		Long: `Load paired FC/SC connectivity matrices, fit the random-effects model to
each, and report the variance decomposition and FC-SC effect correlations.

Without --input (or an input in the config file) a seeded synthetic cohort
is analysed.

Example:
  fcsc run --input cohort.yaml
  fcsc run --subjects 100 --nodes 20 --seed 7 --format json
  fcsc run --config fcsc.yaml --no-sign-adjust`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	f.StringVarP(&opts.Input, "input", "i", "", "dataset file (YAML or JSON)")
	f.BoolVar(&opts.Synthetic, "synthetic", false, "analyse a synthetic cohort even if the config names an input")
	f.IntVar(&opts.Subjects, "subjects", source.DefaultSubjects, "synthetic: number of subjects")
	f.IntVar(&opts.Nodes, "nodes", source.DefaultNodes, "synthetic: number of nodes")
	f.Int64Var(&opts.Seed, "seed", 1, "synthetic: random seed")
	f.Float64Var(&opts.Noise, "noise", source.DefaultNoise, "synthetic: residual standard deviation")
	f.Float64Var(&opts.Coupling, "coupling", source.DefaultCoupling, "synthetic: FC-SC edge effect correlation")
	f.BoolVar(&opts.NoLog, "no-log", false, "skip the log1p transform of SC")
	f.BoolVar(&opts.NoFisherZ, "no-fisher-z", false, "skip the Fisher z transform of FC")
	f.BoolVar(&opts.NoConstrain, "no-constraints", false, "skip identifiability constraints on the interaction")
	f.BoolVar(&opts.NoSign, "no-sign-adjust", false, "do not align the FC interaction sign to SC")
	f.BoolVar(&opts.Sequential, "sequential", false, "fit FC and SC one after the other")
	f.Float64Var(&opts.SymmetryEps, "symmetry-eps", 0, "reject subject matrices asymmetric beyond this tolerance (0 = trust input)")
	cmd.MarkFlagsMutuallyExclusive("input", "synthetic")

	return cmd
}

// resolveConfig layers the config file (if any) and explicitly set flags over the defaults.
func resolveConfig(cmd *cobra.Command, opts *RunOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return config.Config{}, err
		}
	}

	set := cmd.Flags().Changed
	if set("format") {
		cfg.Output.Format = opts.Format
	}
	if set("input") {
		cfg.Input = opts.Input
	}
	if opts.Synthetic {
		cfg.Input = ""
	}
	if set("subjects") {
		cfg.Synthetic.Subjects = opts.Subjects
	}
	if set("nodes") {
		cfg.Synthetic.Nodes = opts.Nodes
	}
	if set("seed") {
		cfg.Synthetic.Seed = opts.Seed
	}
	if set("noise") {
		cfg.Synthetic.Noise = opts.Noise
	}
	if set("coupling") {
		cfg.Synthetic.Coupling = opts.Coupling
	}
	if opts.NoLog {
		cfg.Transforms.Log = false
	}
	if opts.NoFisherZ {
		cfg.Transforms.FisherZ = false
	}
	if opts.NoConstrain {
		cfg.Model.Constraints = false
	}
	if opts.NoSign {
		cfg.Compare.SignAdjust = false
	}
	if opts.Sequential {
		cfg.Run.Parallel = false
	}
	if set("symmetry-eps") {
		cfg.Model.SymmetryEps = opts.SymmetryEps
	}

	return cfg, cfg.Validate()
}

func runAnalysis(cmd *cobra.Command, opts *RunOptions) error {
	log := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := pipeline.Run(ctx, cfg.Source(log), cfg.Pipeline(log))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, source.ErrDuplicateID) || errors.Is(err, source.ErrCountMismatch) {
			return WrapExitError(ExitCommandError, "failed to load dataset", err)
		}
		return WrapExitError(ExitFailure, "analysis failed", err)
	}

	var rep report.Reporter = report.Text{W: cmd.OutOrStdout()}
	if cfg.Output.Format == config.FormatJSON {
		rep = report.JSON{W: cmd.OutOrStdout()}
	}
	if opts.Verbose {
		rep = report.Multi{report.Log{Logger: log}, rep}
	}
	if err = rep.Report(ctx, out.Result); err != nil {
		return WrapExitError(ExitFailure, "failed to write report", err)
	}
	return nil
}

package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/fcsc/compare"
	"github.com/katalvlaran/fcsc/edges"
	"github.com/katalvlaran/fcsc/matrix"
	"github.com/katalvlaran/fcsc/ranef"
	"github.com/katalvlaran/fcsc/report"
	"github.com/katalvlaran/fcsc/source"
	"github.com/katalvlaran/fcsc/transform"
	"github.com/katalvlaran/fcsc/variance"
	"golang.org/x/sync/errgroup"
)

// Config selects the stages' switches.
type Config struct {
	Log         bool // log1p on SC
	FisherZ     bool // clipped Fisher z on FC
	Constraints bool // identifiability constraints on (η, ϖ)
	SignAdjust  bool // align FC interaction sign to SC
	Parallel    bool // fit FC and SC concurrently

	// SymmetryEps > 0 checks every subject matrix for symmetry within eps.
	SymmetryEps float64

	// RunID identifies the run in logs and reports; empty draws a new UUID.
	RunID string

	// Logger receives stage diagnostics; nil discards them.
	Logger *slog.Logger
}

// DefaultConfig enables every stage and parallel fitting.
func DefaultConfig() Config {
	return Config{
		Log:         transform.DefaultLog,
		FisherZ:     transform.DefaultFisherZ,
		Constraints: ranef.DefaultConstraints,
		SignAdjust:  compare.DefaultSignAdjust,
		Parallel:    true,
	}
}

// Outcome is the full product of a run. FC is the record the correlations
// were computed on (sign-aligned when SignAdjust is on).
type Outcome struct {
	Result *report.Result
	FC     *ranef.Model
	SC     *ranef.Model
	FCData *matrix.Dense // transformed S×E
	SCData *matrix.Dense // transformed S×E
}

// Run loads the dataset from src and executes every stage.
//
// Errors from the source, shape validation and fitting are returned
// wrapped with the failing stage; numerical degeneracies are not errors
// and surface as NaN correlations or zero percentages in the Result.
func Run(ctx context.Context, src source.Source, cfg Config) (*Outcome, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	runID := cfg.RunID
	if runID == "" {
		runID = report.NewRunID()
	}
	log = log.With("run_id", runID)

	d, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if err = d.Validate(); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	log.Info("dataset loaded", "subjects", d.Subjects(), "nodes", d.Nodes(), "dropped", len(d.Dropped))

	var flatOpts []edges.Option
	if cfg.SymmetryEps > 0 {
		flatOpts = append(flatOpts, edges.WithSymmetryCheck(cfg.SymmetryEps))
	}
	scRaw, nEdges, err := edges.Flatten(d.SC, flatOpts...)
	if err != nil {
		return nil, fmt.Errorf("flatten SC: %w", err)
	}
	fcRaw, _, err := edges.Flatten(d.FC, flatOpts...)
	if err != nil {
		return nil, fmt.Errorf("flatten FC: %w", err)
	}
	log.Debug("edges flattened", "edges", nEdges)

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	scData, fcData, err := transform.Apply(scRaw, fcRaw,
		transform.WithLog(cfg.Log), transform.WithFisherZ(cfg.FisherZ))
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	log.Debug("transforms applied", "log", cfg.Log, "fisher_z", cfg.FisherZ)

	fc, sc, err := fitBoth(ctx, fcData, scData, cfg, log)
	if err != nil {
		return nil, err
	}

	rep, fcUsed, err := compare.Correlate(fc, sc, compare.WithSignAdjust(cfg.SignAdjust))
	if err != nil {
		return nil, fmt.Errorf("correlate: %w", err)
	}
	if rep.Flipped {
		log.Info("FC interaction sign flipped", "rho_varpi_before", rep.RhoVarpiBeforeAlign, "rho_varpi_after", rep.RhoVarpi)
	}

	an, err := variance.Analyze(fcUsed, sc, fcData, scData)
	if err != nil {
		return nil, fmt.Errorf("variance: %w", err)
	}

	res := &report.Result{
		RunID:    runID,
		Subjects: d.Subjects(),
		Nodes:    d.Nodes(),
		Edges:    nEdges,
		Dropped:  d.Dropped,
		Settings: report.Settings{
			Log:         cfg.Log,
			FisherZ:     cfg.FisherZ,
			Constraints: cfg.Constraints,
			SignAdjust:  cfg.SignAdjust,
		},
		Correlations: rep,
		Variance:     an,
	}
	log.Info("analysis complete")

	return &Outcome{Result: res, FC: fcUsed, SC: sc, FCData: fcData, SCData: scData}, nil
}

// fitBoth fits the FC and SC models, concurrently when cfg.Parallel is set.
func fitBoth(ctx context.Context, fcData, scData *matrix.Dense, cfg Config, log *slog.Logger) (fc, sc *ranef.Model, err error) {
	fit := func(ctx context.Context, kind string, data *matrix.Dense, dst **ranef.Model) func() error {
		return func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := ranef.Fit(data, ranef.WithConstraints(cfg.Constraints))
			if err != nil {
				return fmt.Errorf("fit %s: %w", kind, err)
			}
			log.Debug("model fitted", "type", kind, "mu", m.Mu)
			*dst = m
			return nil
		}
	}

	if !cfg.Parallel {
		if err = fit(ctx, "FC", fcData, &fc)(); err != nil {
			return nil, nil, err
		}
		if err = fit(ctx, "SC", scData, &sc)(); err != nil {
			return nil, nil, err
		}
		return fc, sc, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(fit(gctx, "FC", fcData, &fc))
	g.Go(fit(gctx, "SC", scData, &sc))
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}
	return fc, sc, nil
}

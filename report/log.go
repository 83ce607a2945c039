package report

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/fcsc/variance"
)

// Log emits the Result as structured records on Logger (slog.Default when nil).
type Log struct {
	Logger *slog.Logger
}

// Report implements Reporter.
func (l Log) Report(ctx context.Context, r *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := l.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("run_id", r.RunID)

	for _, kind := range []struct {
		name string
		d    variance.Decomposition
	}{{"SC", r.Variance.SC}, {"FC", r.Variance.FC}} {
		p := kind.d.Percentages
		log.InfoContext(ctx, "variance decomposition",
			"type", kind.name,
			"total", kind.d.Components.Total,
			slog.Group("percent",
				"alpha", p.Alpha,
				"beta", p.Beta,
				"interaction", p.Interaction,
				"epsilon", p.Epsilon,
			),
		)
	}

	c := r.Correlations
	log.InfoContext(ctx, "effect correlations",
		"subjects", r.Subjects,
		"edges", r.Edges,
		"rho_alpha", c.RhoAlpha,
		"rho_beta", c.RhoBeta,
		"rho_eta", c.RhoEta,
		"rho_varpi", c.RhoVarpi,
		"flipped", c.Flipped,
	)
	return nil
}

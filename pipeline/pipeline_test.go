package pipeline_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/fcsc/matrix"
	"github.com/katalvlaran/fcsc/pipeline"
	"github.com/katalvlaran/fcsc/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synth() source.Synthetic {
	return source.Synthetic{Subjects: 50, Nodes: 8, Seed: 11, Noise: 0.1, Coupling: 1}
}

func TestRun_Synthetic(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	out, err := pipeline.Run(context.Background(), synth(), cfg)
	require.NoError(t, err)

	r := out.Result
	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, 50, r.Subjects)
	assert.Equal(t, 8, r.Nodes)
	assert.Equal(t, 28, r.Edges)
	assert.Equal(t, 50, out.FCData.Rows())
	assert.Equal(t, 28, out.SCData.Cols())

	for _, p := range []float64{r.Variance.SC.Percentages.Sum(), r.Variance.FC.Percentages.Sum()} {
		assert.InDelta(t, 100, p, 1e-8)
	}
	assert.Greater(t, r.Correlations.RhoVarpi, 0.9)
	assert.Greater(t, r.Correlations.RhoAlpha, 0.8)
	assert.Greater(t, r.Correlations.RhoEta, 0.8, "aligned interaction edges agree")
	assert.InDelta(t, math.Abs(r.Correlations.RhoVarpiBeforeAlign), r.Correlations.RhoVarpi, 1e-12)
}

func TestRun_SequentialMatchesParallel(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.RunID = "fixed"
	par, err := pipeline.Run(context.Background(), synth(), cfg)
	require.NoError(t, err)

	cfg.Parallel = false
	seq, err := pipeline.Run(context.Background(), synth(), cfg)
	require.NoError(t, err)

	assert.Equal(t, par.Result, seq.Result)
}

func TestRun_NoSignAdjust(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.SignAdjust = false
	out, err := pipeline.Run(context.Background(), synth(), cfg)
	require.NoError(t, err)
	c := out.Result.Correlations
	assert.False(t, c.Flipped)
	assert.Equal(t, c.RhoVarpi, c.RhoVarpiBeforeAlign)
	assert.False(t, out.Result.Settings.SignAdjust)
}

func TestRun_Errors(t *testing.T) {
	_, err := pipeline.Run(context.Background(), source.Static{}, pipeline.DefaultConfig())
	assert.ErrorIs(t, err, source.ErrEmpty)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.Run(ctx, synth(), pipeline.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)

	// Two subjects of a 2-node network: one edge is too few to fit.
	tiny := source.Synthetic{Subjects: 2, Nodes: 3, Seed: 1}
	d, err := tiny.Load(context.Background())
	require.NoError(t, err)
	for i := range d.SC {
		d.SC[i], _ = matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
		d.FC[i], _ = matrix.NewDenseFromRows([][]float64{{1, 0.5}, {0.5, 1}})
	}
	_, err = pipeline.Run(context.Background(), source.Static{Data: d}, pipeline.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fit")
}

func TestRun_SymmetryCheck(t *testing.T) {
	d, err := synth().Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, d.FC[3].Set(0, 1, 0.99))

	cfg := pipeline.DefaultConfig()
	_, err = pipeline.Run(context.Background(), source.Static{Data: d}, cfg)
	require.NoError(t, err, "symmetry is trusted by default")

	cfg.SymmetryEps = 1e-9
	_, err = pipeline.Run(context.Background(), source.Static{Data: d}, cfg)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestRun_LogsWithRunID(t *testing.T) {
	var buf bytes.Buffer
	cfg := pipeline.DefaultConfig()
	cfg.RunID = "run-42"
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := pipeline.Run(context.Background(), synth(), cfg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="dataset loaded" run_id=run-42 subjects=50`)
	assert.Contains(t, buf.String(), `msg="model fitted" run_id=run-42 type=FC`)
	assert.Contains(t, buf.String(), `msg="analysis complete"`)
}

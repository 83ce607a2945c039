package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/fcsc/compare"
	"github.com/katalvlaran/fcsc/report"
	"github.com/katalvlaran/fcsc/variance"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture is a fully specified Result with one undefined correlation and a
// flipped FC interaction.
func fixture() *report.Result {
	return &report.Result{
		RunID:    "5b1f3c9e-7a2d-4e8b-9c61-0f2a4d6e8b10",
		Subjects: 4,
		Nodes:    3,
		Edges:    3,
		Settings: report.Settings{Log: true, FisherZ: true, Constraints: true, SignAdjust: true},
		Correlations: compare.Report{
			RhoAlpha:            0.8123,
			RhoBeta:             -0.25,
			RhoEta:              math.NaN(),
			RhoVarpi:            0.6,
			RhoVarpiBeforeAlign: -0.6,
			Flipped:             true,
		},
		Variance: variance.Analysis{
			SC: variance.Decomposition{
				Components:  variance.Components{Total: 2, Alpha: 0.826, Beta: 0.454, Interaction: 0.12, Epsilon: 0.6},
				Percentages: variance.Percentages{Total: 100, Alpha: 41.3, Beta: 22.7, Interaction: 6, Epsilon: 30},
			},
			FC: variance.Decomposition{
				Components:  variance.Components{Total: 0.5, Alpha: 0.0625, Beta: 0.01625, Interaction: 0.27125, Epsilon: 0.15},
				Percentages: variance.Percentages{Total: 100, Alpha: 12.5, Beta: 3.25, Interaction: 54.25, Epsilon: 30},
			},
		},
	}
}

func TestText_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Text{W: &buf}.Report(context.Background(), fixture()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "text_report", buf.Bytes())
}

func TestText_DroppedAndNoFlip(t *testing.T) {
	r := fixture()
	r.Dropped = []string{"subj_007", "subj_009"}
	r.Correlations.Flipped = false

	var buf bytes.Buffer
	require.NoError(t, report.Text{W: &buf}.Report(context.Background(), r))
	out := buf.String()
	assert.Contains(t, out, "Dropped 2 subjects without FC: subj_007, subj_009\n")
	assert.NotContains(t, out, "After adjustment")
}

func TestJSON_NaNIsNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.JSON{W: &buf}.Report(context.Background(), fixture()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "5b1f3c9e-7a2d-4e8b-9c61-0f2a4d6e8b10", got["run_id"])
	assert.Equal(t, float64(3), got["edges"])

	corr := got["correlations"].(map[string]any)
	assert.Nil(t, corr["rho_eta"])
	assert.Contains(t, corr, "rho_eta")
	assert.Equal(t, 0.8123, corr["rho_alpha"])
	assert.Equal(t, true, corr["flipped"])

	fc := got["variance"].(map[string]any)["fc"].(map[string]any)
	assert.Equal(t, 54.25, fc["percentages"].(map[string]any)["interaction"])
	assert.NotContains(t, got, "dropped")
}

func TestLog_EmitsRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	require.NoError(t, report.Log{Logger: logger}.Report(context.Background(), fixture()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `msg="variance decomposition"`)
	assert.Contains(t, lines[0], "type=SC")
	assert.Contains(t, lines[1], "percent.interaction=54.25")
	assert.Contains(t, lines[2], `msg="effect correlations"`)
	assert.Contains(t, lines[2], "run_id=5b1f3c9e-7a2d-4e8b-9c61-0f2a4d6e8b10")
	assert.Contains(t, lines[2], "rho_beta=-0.25")
	assert.Contains(t, lines[2], "rho_eta=NaN")
}

type failing struct{}

func (failing) Report(context.Context, *report.Result) error { return errors.New("boom") }

func TestMulti(t *testing.T) {
	var a, b bytes.Buffer
	m := report.Multi{report.Text{W: &a}, report.JSON{W: &b}}
	require.NoError(t, m.Report(context.Background(), fixture()))
	assert.NotZero(t, a.Len())
	assert.NotZero(t, b.Len())

	var c bytes.Buffer
	err := report.Multi{failing{}, report.Text{W: &c}}.Report(context.Background(), fixture())
	assert.EqualError(t, err, "boom")
	assert.Zero(t, c.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Report(ctx, fixture()), context.Canceled)
}

func TestNewRunID(t *testing.T) {
	a, b := report.NewRunID(), report.NewRunID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

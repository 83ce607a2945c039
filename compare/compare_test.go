package compare_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fcsc/compare"
	"github.com/katalvlaran/fcsc/matrix"
	"github.com/katalvlaran/fcsc/ranef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

func TestSafeCorrelation(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64 // NaN = undefined
	}{
		{"perfect", []float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 1},
		{"anti", []float64{1, 2, 3}, []float64{3, 2, 1}, -1},
		{"constant x", []float64{5, 5, 5}, []float64{1, 2, 3}, nan},
		{"constant y", []float64{1, 2, 3}, []float64{0, 0, 0}, nan},
		{"one pair", []float64{1, nan, 3}, []float64{nan, 2, 4}, nan},
		{"no overlap", []float64{nan, 1}, []float64{2, nan}, nan},
		{"all missing", []float64{nan, nan}, []float64{nan, nan}, nan},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, nan},
		{"empty", nil, nil, nan},
		{"drops missing pairs", []float64{1, 2, nan, 3}, []float64{1, 2, 100, 3}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := compare.SafeCorrelation(tc.x, tc.y)
			if math.IsNaN(tc.want) {
				assert.True(t, math.IsNaN(got), "got %v", got)
				return
			}
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestSafeCorrelation_NearConstant(t *testing.T) {
	got := compare.SafeCorrelation([]float64{1, 1 + 1e-14, 1}, []float64{1, 2, 3})
	assert.True(t, math.IsNaN(got))
}

// withInteraction builds an s×e dataset 0.5 + varpi[s]*eta[j] + noise.
func withInteraction(t *testing.T, rng *rand.Rand, varpi, eta []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(len(varpi), len(eta))
	require.NoError(t, err)
	for s := range varpi {
		for j := range eta {
			require.NoError(t, d.Set(s, j, 0.5+varpi[s]*eta[j]+0.01*rng.NormFloat64()))
		}
	}
	return d
}

// pairWithNegativeVarpi fits FC and SC models on 20×10 datasets sharing an
// interaction, and returns them with corr(ϖ_FC, ϖ_SC) < 0.
func pairWithNegativeVarpi(t *testing.T) (fc, sc *ranef.Model, before float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(20))
	varpi := make([]float64, 20)
	for i := range varpi {
		varpi[i] = rng.NormFloat64()
	}
	etaFC := make([]float64, 10)
	etaSC := make([]float64, 10)
	for j := range etaFC {
		etaFC[j] = rng.NormFloat64()
		etaSC[j] = rng.NormFloat64()
	}

	var err error
	fc, err = ranef.Fit(withInteraction(t, rng, varpi, etaFC))
	require.NoError(t, err)
	sc, err = ranef.Fit(withInteraction(t, rng, varpi, etaSC))
	require.NoError(t, err)

	before = compare.SafeCorrelation(fc.Varpi, sc.Varpi)
	require.False(t, math.IsNaN(before))
	if before > 0 {
		fc, err = fc.Flipped()
		require.NoError(t, err)
		before = -before
	}
	require.Less(t, before, -0.5)
	return fc, sc, before
}

func TestAlignSigns_FlipsNegative(t *testing.T) {
	fc, sc, before := pairWithNegativeVarpi(t)
	varpi := append([]float64(nil), fc.Varpi...)

	got, al, err := compare.AlignSigns(fc, sc)
	require.NoError(t, err)
	assert.True(t, al.Flipped)
	assert.InDelta(t, before, al.Before, 1e-12)
	assert.Greater(t, al.After, 0.0)
	assert.InDelta(t, -before, al.After, 1e-12)
	assert.NotSame(t, fc, got)
	assert.Equal(t, varpi, fc.Varpi, "input record untouched")
}

func TestAlignSigns_KeepsPositive(t *testing.T) {
	fc, sc, _ := pairWithNegativeVarpi(t)
	fc, err := fc.Flipped()
	require.NoError(t, err)

	got, al, err := compare.AlignSigns(fc, sc)
	require.NoError(t, err)
	assert.False(t, al.Flipped)
	assert.Same(t, fc, got)
	assert.Equal(t, al.Before, al.After)
}

func TestAlignSigns_UndefinedNeverFlips(t *testing.T) {
	fc := &ranef.Model{Alpha: []float64{1, 2}, Beta: []float64{1, 1, 1}, Varpi: []float64{1, 1, 1}}
	sc := &ranef.Model{Alpha: []float64{1, 2}, Beta: []float64{1, 2, 3}, Varpi: []float64{3, 2, 1}}
	got, al, err := compare.AlignSigns(fc, sc)
	require.NoError(t, err)
	assert.Same(t, fc, got)
	assert.False(t, al.Flipped)
	assert.True(t, math.IsNaN(al.After))
}

func TestCorrelate_SignAdjusted(t *testing.T) {
	fc, sc, before := pairWithNegativeVarpi(t)

	rep, used, err := compare.Correlate(fc, sc)
	require.NoError(t, err)
	assert.True(t, rep.Flipped)
	assert.Greater(t, rep.RhoVarpi, 0.0)
	assert.InDelta(t, math.Abs(before), rep.RhoVarpi, 1e-12)
	assert.InDelta(t, before, rep.RhoVarpiBeforeAlign, 1e-12)
	assert.InDelta(t, compare.SafeCorrelation(used.Eta, sc.Eta), rep.RhoEta, 0)
	assert.InDelta(t, -compare.SafeCorrelation(fc.Eta, sc.Eta), rep.RhoEta, 1e-12)

	// α and β are unaffected by the flip.
	assert.InDelta(t, compare.SafeCorrelation(fc.Alpha, sc.Alpha), rep.RhoAlpha, 0)
	assert.InDelta(t, compare.SafeCorrelation(fc.Beta, sc.Beta), rep.RhoBeta, 0)
}

func TestCorrelate_NoSignAdjust(t *testing.T) {
	fc, sc, before := pairWithNegativeVarpi(t)

	rep, used, err := compare.Correlate(fc, sc, compare.WithSignAdjust(false))
	require.NoError(t, err)
	assert.Same(t, fc, used)
	assert.False(t, rep.Flipped)
	assert.InDelta(t, before, rep.RhoVarpi, 1e-12)
	assert.Equal(t, rep.RhoVarpi, rep.RhoVarpiBeforeAlign)
}

func TestCorrelate_Errors(t *testing.T) {
	fc, sc, _ := pairWithNegativeVarpi(t)

	_, _, err := compare.Correlate(nil, sc)
	assert.ErrorIs(t, err, compare.ErrNilModel)

	small, err := ranef.Fit(withInteraction(t, rand.New(rand.NewSource(1)),
		[]float64{1, -1, 0.5}, []float64{1, 2, 3}))
	require.NoError(t, err)
	_, _, err = compare.Correlate(fc, small)
	assert.ErrorIs(t, err, compare.ErrShapeMismatch)
	_, _, err = compare.AlignSigns(small, sc)
	assert.ErrorIs(t, err, compare.ErrShapeMismatch)
}

package source_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/fcsc/matrix"
	"github.com/katalvlaran/fcsc/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthetic_ShapeAndIDs(t *testing.T) {
	d, err := source.Synthetic{Subjects: 5, Nodes: 6, Seed: 7}.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	assert.Equal(t, 5, d.Subjects())
	assert.Equal(t, 6, d.Nodes())
	assert.Equal(t, []string{"subj_001", "subj_002", "subj_003", "subj_004", "subj_005"}, d.SubjectIDs)

	for s := range d.SubjectIDs {
		require.NoError(t, matrix.ValidateSymmetric(d.SC[s], 0))
		require.NoError(t, matrix.ValidateSymmetric(d.FC[s], 0))
		for i := 0; i < 6; i++ {
			v, _ := d.SC[s].At(i, i)
			assert.Equal(t, 0.0, v)
			v, _ = d.FC[s].At(i, i)
			assert.Equal(t, 1.0, v)
		}
		for _, v := range d.FC[s].Values() {
			assert.LessOrEqual(t, math.Abs(v), 1.0)
		}
		for _, v := range d.SC[s].Values() {
			assert.Greater(t, v, -1.0, "expm1 range keeps log1p defined")
		}
	}
}

func TestSynthetic_Deterministic(t *testing.T) {
	g := source.NewSynthetic(42)
	a, err := g.Load(context.Background())
	require.NoError(t, err)
	b, err := g.Load(context.Background())
	require.NoError(t, err)
	for s := range a.SC {
		assert.Equal(t, a.SC[s].Values(), b.SC[s].Values())
		assert.Equal(t, a.FC[s].Values(), b.FC[s].Values())
	}

	c, err := source.NewSynthetic(43).Load(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a.SC[0].Values(), c.SC[0].Values())
}

func TestSynthetic_ZeroSeedIsDefault(t *testing.T) {
	a, err := source.Synthetic{Subjects: 3, Nodes: 3}.Load(context.Background())
	require.NoError(t, err)
	b, err := source.Synthetic{Subjects: 3, Nodes: 3, Seed: 1}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.FC[2].Values(), b.FC[2].Values())
}

func TestSynthetic_Validate(t *testing.T) {
	assert.NoError(t, source.NewSynthetic(1).Validate())
	assert.NoError(t, source.Synthetic{}.Validate())
	for _, g := range []source.Synthetic{
		{Subjects: 1},
		{Nodes: 2},
		{Noise: -1},
		{Coupling: 1.5},
		{Coupling: math.NaN()},
	} {
		assert.ErrorIs(t, g.Validate(), source.ErrBadParams, "%+v", g)
	}
	_, err := source.Synthetic{Nodes: 2}.Load(context.Background())
	assert.ErrorIs(t, err, source.ErrBadParams)
}

package source

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/fcsc/edges"
	"github.com/katalvlaran/fcsc/matrix"
)

// Synthetic generator defaults.
const (
	DefaultSubjects = 50
	DefaultNodes    = 10
	DefaultNoise    = 0.1
	DefaultCoupling = 0.6
)

// Per-type planted global means, in the transformed domain.
const (
	scMean = 1.5 // log1p(count)
	fcMean = 0.3 // Fisher z
)

// Synthetic generates a paired dataset with planted random effects.
//
// Each connectivity type follows y = μ + α_j + β_s + ϖ_s·η_j + ε in its
// transformed domain (log1p for SC, Fisher z for FC) and is mapped back to
// raw values with expm1 and tanh respectively. FC and SC share their
// subject loadings ϖ; the edge effects α and η of FC are correlated with
// those of SC by Coupling. Raw SC diagonals are 0, raw FC diagonals are 1.
//
// Zero fields take the package defaults except Seed (0 means defaultSeed)
// and Coupling, which is used as given. Construct with NewSynthetic to get
// DefaultCoupling.
type Synthetic struct {
	Subjects int
	Nodes    int
	Seed     int64
	Noise    float64 // ε standard deviation
	Coupling float64 // corr of FC and SC edge effects, in [−1, 1]
}

// NewSynthetic returns a generator with the package defaults and seed.
func NewSynthetic(seed int64) Synthetic {
	return Synthetic{
		Subjects: DefaultSubjects,
		Nodes:    DefaultNodes,
		Seed:     seed,
		Noise:    DefaultNoise,
		Coupling: DefaultCoupling,
	}
}

func (g Synthetic) withDefaults() Synthetic {
	if g.Subjects == 0 {
		g.Subjects = DefaultSubjects
	}
	if g.Nodes == 0 {
		g.Nodes = DefaultNodes
	}
	if g.Noise == 0 {
		g.Noise = DefaultNoise
	}
	return g
}

// Validate reports whether the parameters can produce a fittable dataset
// (at least 2 subjects and 2 edges).
func (g Synthetic) Validate() error {
	g = g.withDefaults()
	switch {
	case g.Subjects < 2:
		return fmt.Errorf("subjects=%d, want ≥ 2: %w", g.Subjects, ErrBadParams)
	case g.Nodes < 3:
		return fmt.Errorf("nodes=%d, want ≥ 3: %w", g.Nodes, ErrBadParams)
	case g.Noise < 0 || math.IsNaN(g.Noise) || math.IsInf(g.Noise, 0):
		return fmt.Errorf("noise=%v: %w", g.Noise, ErrBadParams)
	case !(g.Coupling >= -1 && g.Coupling <= 1):
		return fmt.Errorf("coupling=%v, want [-1, 1]: %w", g.Coupling, ErrBadParams)
	}
	return nil
}

// planted holds the effects of one connectivity type.
type planted struct {
	mu    float64
	alpha []float64
	beta  []float64
	eta   []float64
	varpi []float64
}

// Load generates the dataset. The same parameters always yield the same data.
func (g Synthetic) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("Synthetic: %w", err)
	}
	g = g.withDefaults()
	seed := g.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	shared := rngFromSeed(deriveSeed(seed, streamShared))
	scRNG := rngFromSeed(deriveSeed(seed, streamSC))
	fcRNG := rngFromSeed(deriveSeed(seed, streamFC))

	nEdges := edges.Count(g.Nodes)
	varpi := normals(shared, g.Subjects, 0.5)
	scAlpha := normals(shared, nEdges, 0.4)
	scEta := normals(shared, nEdges, 1)
	fcAlpha := coupled(shared, scAlpha, g.Coupling, 0.4)
	fcEta := coupled(shared, scEta, g.Coupling, 1)

	sc := planted{mu: scMean, alpha: scAlpha, beta: normals(shared, g.Subjects, 0.2), eta: scEta, varpi: varpi}
	fc := planted{mu: fcMean, alpha: scale(fcAlpha, 0.5), beta: normals(shared, g.Subjects, 0.1), eta: fcEta, varpi: scale(varpi, 0.3)}

	d := &Dataset{
		SubjectIDs: make([]string, g.Subjects),
		SC:         make([]*matrix.Dense, g.Subjects),
		FC:         make([]*matrix.Dense, g.Subjects),
	}
	var err error
	for s := 0; s < g.Subjects; s++ {
		d.SubjectIDs[s] = SubjectID(s)
		if d.SC[s], err = subjectMatrix(sc, s, g.Nodes, g.Noise, scRNG, math.Expm1, 0); err != nil {
			return nil, fmt.Errorf("Synthetic: %w", err)
		}
		if d.FC[s], err = subjectMatrix(fc, s, g.Nodes, g.Noise*0.5, fcRNG, math.Tanh, 1); err != nil {
			return nil, fmt.Errorf("Synthetic: %w", err)
		}
	}

	return d, nil
}

// SubjectID formats the zero-based index i as subj_001, subj_002, ...
func SubjectID(i int) string { return fmt.Sprintf("subj_%03d", i+1) }

// subjectMatrix draws one subject's edge vector and maps it to a raw
// symmetric matrix with the given diagonal.
func subjectMatrix(p planted, s, nodes int, noise float64, rng *rand.Rand, inverse func(float64) float64, diag float64) (*matrix.Dense, error) {
	vec := make([]float64, len(p.alpha))
	for j := range vec {
		y := p.mu + p.alpha[j] + p.beta[s] + p.varpi[s]*p.eta[j] + noise*rng.NormFloat64()
		vec[j] = inverse(y)
	}
	m, err := edges.Unflatten(vec, nodes)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nodes; i++ {
		_ = m.Set(i, i, diag)
	}
	return m, nil
}

func normals(rng *rand.Rand, n int, sd float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = sd * rng.NormFloat64()
	}
	return out
}

// coupled returns c·ref + √(1−c²)·fresh, with fresh ~ N(0, sd²).
func coupled(rng *rand.Rand, ref []float64, c, sd float64) []float64 {
	k := math.Sqrt(1 - c*c)
	out := make([]float64, len(ref))
	for i := range out {
		out[i] = c*ref[i] + k*sd*rng.NormFloat64()
	}
	return out
}

func scale(xs []float64, f float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = f * v
	}
	return out
}

package compare

import (
	"math"

	"github.com/katalvlaran/fcsc/matrix"
	"gonum.org/v1/gonum/stat"
)

// StdEps is the population standard deviation under which a vector is
// treated as constant.
const StdEps = 1e-12

// MinPairs is the minimum number of jointly observed positions.
const MinPairs = 2

// SafeCorrelation returns the Pearson correlation of x and y over positions
// observed in both, or NaN when it is undefined.
//
// Undefined when:
//   - len(x) != len(y);
//   - fewer than MinPairs positions are observed on both sides;
//   - either side has population standard deviation < StdEps.
//
// The result is clamped to [−1, 1] against rounding.
func SafeCorrelation(x, y []float64) float64 {
	xs, ys, err := matrix.PairedObservations(x, y)
	if err != nil || len(xs) < MinPairs {
		return math.NaN()
	}
	if stat.PopStdDev(xs, nil) < StdEps || stat.PopStdDev(ys, nil) < StdEps {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)

	return math.Max(-1, math.Min(1, r))
}

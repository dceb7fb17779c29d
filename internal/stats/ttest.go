// Package stats holds the per-gene statistics: means, the two-sample
// t-test and the Benjamini–Hochberg correction.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Result is a two-sided t-test outcome. P is NaN when the test is undefined
// (fewer than two replicates in a group, or zero standard error).
type Result struct {
	T  float64
	DF float64
	P  float64
}

func undefined() Result { return Result{T: math.NaN(), DF: math.NaN(), P: math.NaN()} }

// Mean returns the arithmetic mean of the counts.
func Mean(xs []int) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(floats(xs), nil)
}

// TTest runs an independent two-sample t-test of a against b. With
// equalVar false it is Welch's test; with equalVar true the pooled-variance
// Student test.
func TTest(a, b []int, equalVar bool) Result {
	na, nb := float64(len(a)), float64(len(b))
	if na < 2 || nb < 2 {
		return undefined()
	}
	fa, fb := floats(a), floats(b)
	ma, va := stat.MeanVariance(fa, nil)
	mb, vb := stat.MeanVariance(fb, nil)

	var se, df float64
	if equalVar {
		df = na + nb - 2
		pooled := ((na-1)*va + (nb-1)*vb) / df
		se = math.Sqrt(pooled * (1/na + 1/nb))
	} else {
		sa, sb := va/na, vb/nb
		se = math.Sqrt(sa + sb)
		df = (sa + sb) * (sa + sb) / (sa*sa/(na-1) + sb*sb/(nb-1))
	}
	if se == 0 || math.IsNaN(se) {
		return undefined()
	}

	t := (ma - mb) / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.Survival(math.Abs(t))
	return Result{T: t, DF: df, P: math.Min(1, math.Max(0, p))}
}

func floats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

// internal/stats/bh.go
package stats

import (
	"math"
	"sort"
)

// AdjustBH applies the Benjamini–Hochberg step-up procedure and returns the
// adjusted p-values in input order. NaN inputs stay NaN and do not count
// towards the number of tests. Adjusted values are capped at 1 and never
// fall below the raw value.
func AdjustBH(p []float64) []float64 {
	adj := make([]float64, len(p))
	idx := make([]int, 0, len(p))
	for i, v := range p {
		if math.IsNaN(v) {
			adj[i] = math.NaN()
			continue
		}
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(x, y int) bool { return p[idx[x]] < p[idx[y]] })

	m := float64(len(idx))
	running := 1.0
	for k := len(idx) - 1; k >= 0; k-- {
		i := idx[k]
		if v := p[i] * m / float64(k+1); v < running {
			running = v
		}
		adj[i] = running
	}
	return adj
}

package stats

import "rnaseqde/internal/gene"

// Analyze fills means and raw p-values for every record, then the adjusted
// p-values across the whole table. Record order is unchanged.
func Analyze(t gene.Table, equalVar bool) {
	for i := range t {
		r := &t[i]
		r.MeanA = Mean(r.CountsA)
		r.MeanB = Mean(r.CountsB)
		r.PValue = TTest(r.CountsA, r.CountsB, equalVar).P
	}
	adj := AdjustBH(t.PValues())
	for i := range t {
		t[i].AdjPValue = adj[i]
	}
}

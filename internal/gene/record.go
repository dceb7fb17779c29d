// internal/gene/record.go
package gene

import "math"

// Record is one row of the expression table. Counts are set by the
// generator; every later stage fills in its own derived fields.
type Record struct {
	ID      string
	CountsA []int
	CountsB []int

	MeanA     float64
	MeanB     float64
	PValue    float64
	AdjPValue float64

	Annotation string
}

// Significant reports whether the adjusted p-value is strictly below alpha.
// NaN is never significant.
func (r Record) Significant(alpha float64) bool {
	if math.IsNaN(r.AdjPValue) {
		return false
	}
	return r.AdjPValue < alpha
}

// Table keeps records in gene-list order.
type Table []Record

// IDs returns the gene identifiers in table order.
func (t Table) IDs() []string {
	ids := make([]string, len(t))
	for i, r := range t {
		ids[i] = r.ID
	}
	return ids
}

// PValues returns the raw p-values in table order.
func (t Table) PValues() []float64 {
	ps := make([]float64, len(t))
	for i, r := range t {
		ps[i] = r.PValue
	}
	return ps
}

// Untestable counts records whose test produced no p-value.
func (t Table) Untestable() int {
	n := 0
	for _, r := range t {
		if math.IsNaN(r.PValue) {
			n++
		}
	}
	return n
}

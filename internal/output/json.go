// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"math"

	"rnaseqde/internal/gene"
	"rnaseqde/pkg/api"
)

// ToAPIGene converts a record to the stable wire schema (v1).
func ToAPIGene(r gene.Record) api.GeneV1 {
	return api.GeneV1{
		Gene:       r.ID,
		CountsA:    append([]int(nil), r.CountsA...),
		CountsB:    append([]int(nil), r.CountsB...),
		MeanA:      finite(r.MeanA),
		MeanB:      finite(r.MeanB),
		PValue:     finite(r.PValue),
		AdjPValue:  finite(r.AdjPValue),
		Annotation: r.Annotation,
	}
}

// finite maps NaN and ±Inf to nil; encoding/json rejects them.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// WriteJSON writes a single JSON array of v1 genes (pretty-indented).
func WriteJSON(w io.Writer, t gene.Table) error {
	out := make([]api.GeneV1, 0, len(t))
	for _, r := range t {
		out = append(out, ToAPIGene(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

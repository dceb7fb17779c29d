// pkg/api/genes_v1.go
package api

// GeneV1 is the stable JSON schema for one row of the expression table.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Statistics are null when the test was undefined for the gene.
type GeneV1 struct {
	Gene       string   `json:"gene"`
	CountsA    []int    `json:"counts_a"`
	CountsB    []int    `json:"counts_b"`
	MeanA      *float64 `json:"mean_a"`
	MeanB      *float64 `json:"mean_b"`
	PValue     *float64 `json:"p_value"`
	AdjPValue  *float64 `json:"adj_p_value"`
	Annotation string   `json:"annotation,omitempty"`
}

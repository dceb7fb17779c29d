// Package annotate selects the differentially expressed genes and attaches
// their Gene Ontology terms.
package annotate

import (
	"strings"

	"rnaseqde/internal/gene"
)

// Placeholder is used for selected genes with no lookup entry.
const Placeholder = "No annotations available"

// Lookup maps a gene id to a comma-separated list of GO term ids.
type Lookup map[string]string

// DefaultLookup returns the built-in GO mapping for the simulated genes.
func DefaultLookup() Lookup {
	return Lookup{
		"Gene1": "GO:0001234,GO:5678901",
		"Gene2": "GO:2345678,GO:8901234",
		"Gene3": "GO:1234567",
		"Gene4": "GO:5678901,GO:2345678",
	}
}

// Get returns the terms for id. Missing and blank entries both report false.
func (l Lookup) Get(id string) (string, bool) {
	v, ok := l[id]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Terms splits the entry for id into individual GO ids.
func (l Lookup) Terms(id string) []string {
	v, ok := l.Get(id)
	if !ok {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Filter returns copies of the records whose adjusted p-value is strictly
// below alpha, in table order. The input is not modified.
func Filter(t gene.Table, alpha float64) gene.Table {
	out := gene.Table{}
	for _, r := range t {
		if r.Significant(alpha) {
			out = append(out, r)
		}
	}
	return out
}

// Annotate sets the annotation of every record in t.
func Annotate(t gene.Table, l Lookup) {
	for i := range t {
		if v, ok := l.Get(t[i].ID); ok {
			t[i].Annotation = v
		} else {
			t[i].Annotation = Placeholder
		}
	}
}

// Select filters t at alpha and annotates the result.
func Select(t gene.Table, alpha float64, l Lookup) gene.Table {
	out := Filter(t, alpha)
	Annotate(out, l)
	return out
}

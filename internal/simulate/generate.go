// internal/simulate/generate.go
package simulate

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"rnaseqde/internal/gene"
)

// MaxRate bounds the Poisson rates so every draw fits in an int.
const MaxRate = 1e9

// Params controls the simulation.
type Params struct {
	Genes      []string
	RateA      float64 // Poisson mean for condition A
	RateB      float64 // Poisson mean for condition B
	Replicates int
}

// Validate checks the parameter invariants the generator relies on.
func (p Params) Validate() error {
	if len(p.Genes) == 0 {
		return errors.New("at least one gene is required")
	}
	seen := make(map[string]struct{}, len(p.Genes))
	for _, g := range p.Genes {
		if g == "" {
			return errors.New("gene identifiers must be non-empty")
		}
		if _, dup := seen[g]; dup {
			return fmt.Errorf("duplicate gene %q", g)
		}
		seen[g] = struct{}{}
	}
	for _, r := range []float64{p.RateA, p.RateB} {
		if !validRate(r) {
			return fmt.Errorf("Poisson rates must be finite, > 0 and ≤ %g, got %v", MaxRate, r)
		}
	}
	if p.Replicates < 2 {
		return errors.New("replicates must be ≥ 2")
	}
	return nil
}

// validRate rejects NaN and ±Inf as well as out-of-range values.
func validRate(r float64) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0) && r > 0 && r <= MaxRate
}

// NewSource returns the seeded source used for all draws of a run.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// Generate builds one record per gene. All condition A vectors are drawn
// before any condition B vector.
func Generate(src rand.Source, p Params) gene.Table {
	t := make(gene.Table, len(p.Genes))
	a := distuv.Poisson{Lambda: p.RateA, Src: src}
	for i, id := range p.Genes {
		t[i] = gene.Record{ID: id, CountsA: draw(a, p.Replicates)}
	}
	b := distuv.Poisson{Lambda: p.RateB, Src: src}
	for i := range t {
		t[i].CountsB = draw(b, p.Replicates)
	}
	return t
}

func draw(d distuv.Poisson, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = int(d.Rand())
	}
	return out
}

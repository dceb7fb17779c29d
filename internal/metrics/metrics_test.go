package metrics

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rnaseqde/internal/gene"
)

func TestObserve(t *testing.T) {
	r := New()
	all := gene.Table{
		{ID: "a", PValue: 0.001},
		{ID: "b", PValue: math.NaN()},
		{ID: "c", PValue: 0.3},
	}
	r.Observe(all, all[:1])
	assert.Equal(t, 3.0, testutil.ToFloat64(r.tested))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.significant))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.untestable))
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.Observe(gene.Table{{ID: "a"}}, nil)
	r.Finish(1500*time.Millisecond, time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "rnaseq.prom")
	require.NoError(t, r.WriteTextfile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "rnaseq_genes_tested 1")
	assert.Contains(t, out, "rnaseq_run_duration_seconds 1.5")
	assert.True(t, strings.Contains(out, "rnaseq_last_success_timestamp_seconds 1.7e+09"))
}

func TestWriteTextfile_BadDir(t *testing.T) {
	r := New()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	assert.Error(t, err)
}

func TestRunsAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Observe(gene.Table{{ID: "x"}, {ID: "y"}}, nil)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.tested))
}

func TestGatherer(t *testing.T) {
	r := New()
	r.Observe(gene.Table{{ID: "a"}}, nil)
	mfs, err := r.Gatherer().Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"rnaseq_genes_tested", "rnaseq_genes_significant", "rnaseq_genes_untestable",
		"rnaseq_run_duration_seconds", "rnaseq_last_success_timestamp_seconds",
	} {
		assert.True(t, names[want], want)
	}
}
